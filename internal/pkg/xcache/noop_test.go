package xcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedID struct {
	ID int64 `json:"id"`
}

func TestNoop_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	cache := NewNoop[cachedID]()

	require.NoError(t, cache.Set(ctx, "data_object:1", cachedID{ID: 1}))

	_, err := cache.Get(ctx, "data_object:1")
	assert.ErrorIs(t, err, ErrCacheDisabled)

	assert.NoError(t, cache.Delete(ctx, "data_object:1"))
	assert.NoError(t, cache.Invalidate(ctx))
	assert.NoError(t, cache.Clear(ctx))
	assert.Equal(t, "noop", cache.GetType())
}

func TestNewFromConfig_DisabledModes(t *testing.T) {
	for _, mode := range []string{"", "invalid-mode"} {
		t.Run("mode="+mode, func(t *testing.T) {
			cache, err := NewFromConfig[cachedID](context.Background(), Config{Mode: mode})
			require.NoError(t, err)
			assert.Equal(t, "noop", cache.GetType())

			_, err = cache.Get(context.Background(), "data_object:7")
			assert.ErrorIs(t, err, ErrCacheDisabled)
		})
	}
}
