package configs

// Telemetry configures OpenTelemetry tracing. Tracing is disabled when
// Endpoint is empty.
type Telemetry struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"digigrow-web"`
}
