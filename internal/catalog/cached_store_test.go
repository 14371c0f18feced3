package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-risk-service/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

type staticStore struct {
	products []Product
	calls    int
}

func (s *staticStore) List(ctx context.Context) ([]Product, error) {
	s.calls++
	return s.products, nil
}

func (s *staticStore) Get(ctx context.Context, id string) (Product, error) {
	s.calls++
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func newCacheFixture(t *testing.T) (*staticStore, *CachedStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	inner := &staticStore{products: []Product{
		{ID: "p-1", Name: "Trail Runner Pro", StockAmount: 120, WeeklySales: 35, ProductAgeDays: 60, Rating: 4.6, ReturnRate: 0.03},
		{ID: "p-2", Name: "Canvas Weekender Bag", StockAmount: 750, WeeklySales: 2, ProductAgeDays: 280, Rating: 2.2, ReturnRate: 0.24},
	}}

	cached := NewCachedStore(inner, client, time.Minute, logger.NewTestLogger(t))
	return inner, cached, mr
}

// ==========================
// Core Functionality Tests
// ==========================

func TestCachedStore_List_PopulatesAndServesCache(t *testing.T) {
	inner, store, mr := newCacheFixture(t)
	ctx := context.Background()

	first, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, inner.calls)
	assert.True(t, mr.Exists("catalog:products"))

	// Second call is served from the cache
	second, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedStore_Get_PopulatesAndServesCache(t *testing.T) {
	inner, store, mr := newCacheFixture(t)
	ctx := context.Background()

	p, err := store.Get(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, "Canvas Weekender Bag", p.Name)
	assert.Equal(t, 1, inner.calls)
	assert.True(t, mr.Exists("catalog:product:p-2"))

	again, err := store.Get(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, p, again)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedStore_Get_NotFoundIsNotCached(t *testing.T) {
	inner, store, mr := newCacheFixture(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "p-missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.False(t, mr.Exists("catalog:product:p-missing"))

	_, err = store.Get(ctx, "p-missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedStore_CorruptEntryFallsThrough(t *testing.T) {
	inner, store, mr := newCacheFixture(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("catalog:products", "not json at all"))

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, inner.calls)

	// The corrupt entry was replaced with a valid one
	raw, err := mr.Get("catalog:products")
	require.NoError(t, err)
	var cached []Product
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Len(t, cached, 2)
}

func TestCachedStore_RedisDownFallsThrough(t *testing.T) {
	inner, store, mr := newCacheFixture(t)
	ctx := context.Background()

	mr.Close()

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, inner.calls)

	p, err := store.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Trail Runner Pro", p.Name)
}

func TestCachedStore_CacheWriteFailureStillReturns(t *testing.T) {
	client, mock := redismock.NewClientMock()
	inner := &staticStore{products: []Product{
		{ID: "p-1", Name: "Trail Runner Pro"},
	}}
	store := NewCachedStore(inner, client, time.Minute, logger.NewTestLogger(t))

	p := inner.products[0]
	data, err := json.Marshal(p)
	require.NoError(t, err)

	mock.ExpectGet("catalog:product:p-1").RedisNil()
	mock.ExpectSet("catalog:product:p-1", data, time.Minute).
		SetErr(errors.New("OOM command not allowed"))

	got, err := store.Get(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedStore_EntriesExpire(t *testing.T) {
	inner, store, mr := newCacheFixture(t)
	ctx := context.Background()

	_, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	mr.FastForward(2 * time.Minute)

	_, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
