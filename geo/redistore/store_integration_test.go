//go:build integration

package redistore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formbridge/go-contact/geo"
	"github.com/formbridge/go-contact/geo/redistore"
)

// Requires a reachable Redis, e.g. REDIS_ADDR=127.0.0.1:6379.
func newIntegrationStore(t *testing.T) *redistore.Store {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb, err := redistore.NewClient(ctx, redistore.Config{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	key := "contact:dialcodes:test:" + t.Name()
	t.Cleanup(func() { rdb.Del(context.Background(), key) })
	return redistore.New(rdb, key)
}

func TestStoreRoundTrip(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []geo.Country{
		{ISO2: "cz", DialCode: "420"},
		{ISO2: "DE", DialCode: "49"},
		{ISO2: "BAD", DialCode: "1"},
	}))

	code, ok, err := store.DialCode(ctx, "CZ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "420", code)

	_, ok, err = store.DialCode(ctx, "ZX")
	require.NoError(t, err)
	assert.False(t, ok)

	countries, err := store.Countries(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 2, "malformed entry must be skipped")

	sel, ok, err := store.Source("de").Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, geo.Selection{ISO2: "DE", DialCode: "49"}, sel)
}
