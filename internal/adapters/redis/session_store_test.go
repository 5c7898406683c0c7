package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "user-123",
		Email:     "user@example.com",
		Role:      domainauth.RoleTeacher,
		OrgID:     "org-1",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession("test-session-1")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Email, retrieved.Email)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.Equal(t, session.OrgID, retrieved.OrgID)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession("test-session-delete")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	_, err = store.Get(ctx, "test-session-delete")
	require.NoError(t, err)

	err = store.Delete(ctx, "test-session-delete")
	require.NoError(t, err)

	_, err = store.Get(ctx, "test-session-delete")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession("test-session-ttl")
	session.ExpiresAt = time.Now().Add(100 * time.Millisecond)

	err := store.Save(ctx, session)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = store.Get(ctx, "test-session-ttl")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	session := testSession("prefix-test")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	exists := client.Exists(ctx, "test-prefix:prefix-test").Val()
	assert.Equal(t, int64(1), exists)

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
}

func TestSessionStore_SaveEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	session := testSession("")

	err := store.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestSessionStore_SaveExpiredSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	session := testSession("expired-session")
	session.ExpiresAt = time.Now().Add(-1 * time.Hour)

	err := store.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record is expired")
}

func TestSessionStore_GetEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "")
	assert.Equal(t, ErrNotFound, err)
}

func TestStudentSessionStore_SaveGetDelete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStudentSessionStore(client)
	ctx := context.Background()

	session := domainauth.StudentSession{
		ID:              "student-session-1",
		StudentID:       "student-1",
		OrgID:           "org-1",
		FirstName:       "kofi",
		Role:            domainauth.RoleStudent,
		AuthenticatedAt: time.Now(),
		ExpiresAt:       time.Now().Add(30 * time.Minute),
	}

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "student-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.StudentID, retrieved.StudentID)
	assert.Equal(t, session.OrgID, retrieved.OrgID)
	assert.Equal(t, domainauth.RoleStudent, retrieved.Role)

	err = store.Delete(ctx, "student-session-1")
	require.NoError(t, err)

	_, err = store.Get(ctx, "student-session-1")
	assert.Equal(t, ErrNotFound, err)
}

func TestStudentSessionStore_SaveEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStudentSessionStore(client)

	err := store.Save(context.Background(), domainauth.StudentSession{
		StudentID: "student-1",
		ExpiresAt: time.Now().Add(time.Minute),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student session ID cannot be empty")
}

func TestSessionStore_CorruptRecord(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "session:corrupt", "{not json", time.Hour).Err())

	_, err := store.Get(ctx, "corrupt")
	assert.ErrorIs(t, err, ErrNotFound)

	exists := client.Exists(ctx, "session:corrupt").Val()
	assert.Equal(t, int64(0), exists, "corrupt record should be deleted")
}

func TestStudentSessionStore_CorruptRecord(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStudentSessionStore(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "student-session:corrupt", "{not json", time.Hour).Err())

	_, err := store.Get(ctx, "corrupt")
	assert.ErrorIs(t, err, ErrNotFound)

	exists := client.Exists(ctx, "student-session:corrupt").Val()
	assert.Equal(t, int64(0), exists, "corrupt record should be deleted")
}
