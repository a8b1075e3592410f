package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assertion:"

type redisAssertionRepository struct {
	client redis.UniversalClient
}

func NewRedisAssertionRepository(client redis.UniversalClient) linking.Repository {
	return &redisAssertionRepository{client: client}
}

func (r *redisAssertionRepository) Create(ctx context.Context, newAssertion linking.Assertion, ttl time.Duration) error {
	encoded, err := json.Marshal(newAssertion)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+newAssertion.Token, encoded, ttl).Err()
}

func (r *redisAssertionRepository) Consume(ctx context.Context, token string) (*linking.Assertion, error) {
	// GetDel is atomic so only the first of two concurrent consumers
	// gets the assertion; the rest observe redis.Nil.
	encoded, err := r.client.GetDel(ctx, keyPrefix+token).Result()
	if err != nil {
		return nil, err
	}
	var found linking.Assertion
	if err := json.Unmarshal([]byte(encoded), &found); err != nil {
		return nil, err
	}
	return &found, nil
}
