package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digigrow-web/internal/adapter/memory"
)

func TestSessionStorage(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionStorage()

	_, ok, err := s.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "s1", "k", "v1"))
	require.NoError(t, s.Set(ctx, "s1", "k", "v2"))
	require.NoError(t, s.Set(ctx, "s2", "k", "other"))

	v, ok, err := s.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Delete(ctx, "s1", []string{"k", "missing"}))
	_, ok, _ = s.Get(ctx, "s1", "k")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(ctx, "unknown", []string{"k"}))
}

func TestSessionStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("s%d", i%5)
			_ = s.Set(ctx, sid, "k", "v")
			_, _, _ = s.Get(ctx, sid, "k")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, s.Len())
}
