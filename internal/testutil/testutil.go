// Package testutil provides shared helpers for tests that need real
// infrastructure. Tests are skipped when the backing service is unavailable
// unless TEST_REQUIRE_DB / TEST_REQUIRE_REDIS / TEST_REQUIRE_INFRA is set.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/campushq/campushq-api/internal/migrate"
)

// RunMigrations delegates to the shared migrate package to apply production migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// TestDBConfig holds configuration for the test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig returns default test database configuration.
// Defaults to port 55432 (local test DB from docker-compose test profile).
// CI/CD environments should set TEST_DB_PORT=5432 explicitly.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "campushq"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "campushq"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "campushq"),
	}
}

func testDSN(cfg TestDBConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		cfg.User, cfg.Password, hostPort, cfg.DBName)
}

// SkipIfNoTestDB skips the test if the test database is not available.
func SkipIfNoTestDB(t TestingTB) {
	t.Helper()

	db, err := sql.Open("pgx", testDSN(DefaultTestDBConfig()))
	if err != nil {
		if requireDB() {
			t.Fatal("Test database not available:", err)
		}
		t.Skip("Test database not available:", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			t.Logf("test db close failed: %v", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		if requireDB() {
			t.Fatal("Test database not available:", pingErr)
		}
		t.Skip("Test database not available:", pingErr)
	}
}

// SetupTestDB creates a test database connection and runs migrations.
func SetupTestDB(t TestingTB) *sql.DB {
	t.Helper()
	SkipIfNoTestDB(t)

	db, err := sql.Open("pgx", testDSN(DefaultTestDBConfig()))
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		t.Fatal("Failed to connect to test database. Make sure PostgreSQL is running (docker-compose up -d):", err)
	}

	// Run production migrations to ensure schema matches the application
	if migrateErr := RunMigrations(ctx, db); migrateErr != nil {
		t.Fatal("Failed to run migrations:", migrateErr)
	}

	CleanupTestDB(t, db)

	return db
}

// CleanupTestDB removes all test data from the database.
func CleanupTestDB(t TestingTB, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Delete in reverse dependency order; everything hangs off organizations.
	tables := []string{
		"exam_results",
		"exams",
		"notifications",
		"school_settings",
		"students",
		"faculty",
		"programs",
		"organizations",
	}
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("Failed to clean up table %s: %v", table, err)
		}
	}
}

// TeardownTestDB closes the database connection.
func TeardownTestDB(t TestingTB, db *sql.DB) {
	t.Helper()
	if db != nil {
		CleanupTestDB(t, db)
		if err := db.Close(); err != nil {
			t.Fatal("Failed to close database:", err)
		}
	}
}

// WithTestDB is a helper that sets up and tears down a test database.
func WithTestDB(t TestingTB, fn func(*sql.DB)) {
	t.Helper()
	db := SetupTestDB(t)
	defer TeardownTestDB(t, db)
	fn(db)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envBool(key string) bool {
	v := os.Getenv(key)
	return v == "1" || v == "true" || v == "TRUE" || v == "True"
}

func requireDB() bool    { return envBool("TEST_REQUIRE_DB") || envBool("TEST_REQUIRE_INFRA") }
func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// Redis test utilities

// GetTestRedisAddr returns the appropriate Redis address for testing.
// It checks environment variables to determine if we're in CI or local development.
// Returns the address and whether Redis is available at that address.
func GetTestRedisAddr(t TestingTB) (string, bool) {
	t.Helper()

	if ciAddr := os.Getenv("REDIS_ADDR"); ciAddr != "" {
		return testRedisConnection(t, ciAddr)
	}

	ciAddresses := []string{
		"redis:6379",     // Docker Compose service name in CI
		"localhost:6379", // Alternative CI setup
	}
	for _, candidate := range ciAddresses {
		if validatedAddr, ok := testRedisConnection(t, candidate); ok {
			return validatedAddr, true
		}
	}

	// Default to local test Redis address
	return testRedisConnection(t, "localhost:56379")
}

// testRedisConnection tests if Redis is available at the given address.
func testRedisConnection(t TestingTB, addr string) (string, bool) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Logf("Redis not available at %s: %v", addr, err)
		return addr, false
	}

	return addr, true
}

// selectTestRedisDB chooses a Redis DB index for tests to avoid cross-package
// interference. A lock key in DB 0 reserves an index so FlushDB in the
// selected test DB won't remove the reservation.
func selectTestRedisDB(t TestingTB, addr string) int {
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
		t.Logf("Invalid TEST_REDIS_DB=%q, falling back to auto-select", v)
	}

	meta := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	defer func() {
		if err := meta.Close(); err != nil {
			t.Logf("warning: failed to close redis meta client: %v", err)
		}
	}()

	for i := 1; i <= 15; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		lockKey := fmt.Sprintf("campushq:testutil:db_lock:%d", i)
		lockVal := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
		ok, err := meta.SetNX(ctx, lockKey, lockVal, 30*time.Minute).Result()
		cancel()
		if err != nil || !ok {
			continue
		}

		registerRedisCleanup(t, addr, lockKey)
		t.Logf("Using Redis DB=%d for tests at %s", i, addr)
		return i
	}

	t.Logf("Falling back to Redis DB=1 for tests at %s", addr)
	return 1
}

func registerRedisCleanup(t TestingTB, addr, lockKey string) {
	tc, ok := any(t).(interface{ Cleanup(func()) })
	if !ok {
		return
	}

	tc.Cleanup(func() {
		c := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := c.Del(ctx, lockKey).Err(); err != nil {
			t.Logf("warning: failed to release redis db lock %s: %v", lockKey, err)
		}
		cancel()
		if err := c.Close(); err != nil {
			t.Logf("warning: failed to close redis cleanup client: %v", err)
		}
	})
}

// SetupTestRedis creates a Redis client for testing with automatic address detection.
// Tests will be skipped if Redis is not available.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr, ok := GetTestRedisAddr(t)
	if !ok {
		if requireRedis() {
			t.Fatal("Redis not available for testing")
		}
		t.Skip("Redis not available for testing")
	}

	dbIndex := selectTestRedisDB(t, addr)
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIndex,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		if requireRedis() {
			t.Fatalf("Redis not available for testing at %s: %v", addr, err)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	// Clean up any existing test data
	client.FlushDB(ctx)

	return client
}
