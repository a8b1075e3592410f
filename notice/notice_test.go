package notice

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, time.Minute), mr
}

func TestNoticeShownOnce(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	token, err := store.Put(ctx, "Your external account link has expired")
	require.NoError(t, err)

	message, err := store.Take(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Your external account link has expired", message)

	// Second read observes the notice as gone
	_, err = store.Take(ctx, token)
	assert.Error(t, err)
}

func TestNoticeExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	token, err := store.Put(ctx, "one shot")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Take(ctx, token)
	assert.Error(t, err)
}
