package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"digigrow-web/internal/config/configs"
	"digigrow-web/internal/telemetry"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), configs.Telemetry{ServiceName: "test"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; nothing is exported because no span is recorded.
	shutdown, err := telemetry.Setup(context.Background(), configs.Telemetry{
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "test",
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
