package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[record](time.Minute)

	require.NoError(t, store.Save(ctx, "a", record{Name: "first", Items: []string{"x"}}))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, []string{"x"}, got.Items)
}

func TestMemoryStoreIsolatesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[record](time.Minute)

	original := record{Items: []string{"x"}}
	require.NoError(t, store.Save(ctx, "a", original))
	original.Items[0] = "mutated"

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Items[0])
}

func TestMemoryStoreMissAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[record](time.Minute)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Save(ctx, "a", record{Name: "n"}))
	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[record](20 * time.Millisecond)

	require.NoError(t, store.Save(ctx, "a", record{Name: "n"}))
	time.Sleep(40 * time.Millisecond)

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-url")
	assert.Error(t, err)
}
