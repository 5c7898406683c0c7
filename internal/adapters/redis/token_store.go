package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenRecord is the persisted bearer-token shape. The expiry is embedded in
// the record itself (epoch millis) in addition to the Redis key TTL, so a
// token read back after its own deadline is treated as absent even if the
// key has not been reaped yet.
type tokenRecord struct {
	Value  string `json:"value"`
	Expiry int64  `json:"expiry"`
}

// TokenStore is a TTL'd key-value store for bearer tokens.
type TokenStore struct {
	client redis.UniversalClient
	prefix string
}

// NewTokenStore creates a token store with the default "token:" prefix.
func NewTokenStore(client redis.UniversalClient) *TokenStore {
	return &TokenStore{client: client, prefix: "token:"}
}

// Set persists value under key for ttl. The absolute expiry is written into
// the record as well as onto the key.
func (t *TokenStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.New("token key cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("token ttl must be positive")
	}
	rec := tokenRecord{
		Value:  value,
		Expiry: time.Now().Add(ttl).UnixMilli(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	return t.client.Set(ctx, t.prefix+key, data, ttl).Err()
}

// Get returns the stored value and whether it was present. Expired or
// corrupt records are deleted and reported as absent.
func (t *TokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}
	data, err := t.client.Get(ctx, t.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		if delErr := t.Delete(ctx, key); delErr != nil {
			return "", false, fmt.Errorf("delete corrupt token: %w", errors.Join(err, delErr))
		}
		return "", false, nil
	}
	if time.Now().UnixMilli() > rec.Expiry {
		if delErr := t.Delete(ctx, key); delErr != nil {
			return "", false, fmt.Errorf("delete expired token: %w", delErr)
		}
		return "", false, nil
	}
	return rec.Value, true, nil
}

// Delete removes the token under key.
func (t *TokenStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return t.client.Del(ctx, t.prefix+key).Err()
}
