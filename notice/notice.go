// Package notice implements the one-shot message channel shown to users
// after a redirect. A notice survives exactly one read: the store hands
// it out once and discards it.
package notice

import (
	"context"
	"time"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "notice:"

// Store is a short lived key value store scoped to one redirect cycle.
type Store struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewStore(client redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Put stashes a message and returns the token to carry across the
// redirect.
func (s *Store) Put(ctx context.Context, message string) (string, error) {
	token, err := nanoid.New()
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID)
	}
	if err := s.client.Set(ctx, keyPrefix+token, message, s.ttl).Err(); err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to store notice")
	}
	return token, nil
}

// Take returns the message for a token and discards it. A second Take
// with the same token reports not found; GetDel keeps the read-once
// guarantee even under concurrent reads.
func (s *Store) Take(ctx context.Context, token string) (string, error) {
	message, err := s.client.GetDel(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "Notice has already been shown")
	}
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve notice")
	}
	return message, nil
}
