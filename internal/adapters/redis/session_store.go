package redis

// Package redis provides Redis-backed adapters for sessions and tokens.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

// ErrNotFound aliases the ports sentinel so callers holding only the adapter
// can still match it.
var ErrNotFound = ports.ErrNotFound

// SessionStore persists OAuth-derived sessions in Redis. TTLs follow the
// session's ExpiresAt, with an expiry double-check on read in case the
// backing key outlives the record's own deadline.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a session store with the default "session:" prefix.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, prefix: "session:"}
}

// NewSessionStoreWithPrefix creates a session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	return saveRecord(ctx, s.client, s.prefix+sess.ID, sess, sess.ExpiresAt)
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	var sess domainauth.Session
	if id == "" {
		return sess, ErrNotFound
	}
	if err := loadRecord(ctx, s.client, s.prefix+id, &sess); err != nil {
		return domainauth.Session{}, err
	}
	if time.Now().After(sess.ExpiresAt) {
		if err := s.Delete(ctx, id); err != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", err)
		}
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}

// StudentSessionStore persists student credential sessions. The records are
// independent of OAuth sessions and checked first during bootstrap.
type StudentSessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewStudentSessionStore creates a student session store with the default
// "student-session:" prefix.
func NewStudentSessionStore(client redis.UniversalClient) *StudentSessionStore {
	return &StudentSessionStore{client: client, prefix: "student-session:"}
}

func (s *StudentSessionStore) Save(ctx context.Context, sess domainauth.StudentSession) error {
	if sess.ID == "" {
		return errors.New("student session ID cannot be empty")
	}
	return saveRecord(ctx, s.client, s.prefix+sess.ID, sess, sess.ExpiresAt)
}

func (s *StudentSessionStore) Get(ctx context.Context, id string) (domainauth.StudentSession, error) {
	var sess domainauth.StudentSession
	if id == "" {
		return sess, ErrNotFound
	}
	if err := loadRecord(ctx, s.client, s.prefix+id, &sess); err != nil {
		return domainauth.StudentSession{}, err
	}
	if time.Now().After(sess.ExpiresAt) {
		if err := s.Delete(ctx, id); err != nil {
			return domainauth.StudentSession{}, fmt.Errorf("cleanup expired student session: %w", err)
		}
		return domainauth.StudentSession{}, ErrNotFound
	}
	return sess, nil
}

func (s *StudentSessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}

// saveRecord marshals v and writes it under key with a TTL derived from the
// record's absolute expiry. Expired records are rejected rather than stored.
func saveRecord(ctx context.Context, client redis.UniversalClient, key string, v any, expiresAt time.Time) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return errors.New("record is expired")
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// loadRecord reads and unmarshals the record at key into dst. A corrupt
// record is deleted and reported as absent so a stale blob cannot wedge the
// login flow.
func loadRecord(ctx context.Context, client redis.UniversalClient, key string, dst any) error {
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		if delErr := client.Del(ctx, key).Err(); delErr != nil {
			return fmt.Errorf("delete corrupt record: %w", errors.Join(err, delErr))
		}
		return ErrNotFound
	}
	return nil
}
