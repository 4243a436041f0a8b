// Package testutil starts throwaway Postgres and Redis containers for
// integration tests.
//
// Usage in TestMain:
//
//	func TestMain(m *testing.M) {
//	    pg := testutil.MustStartPostgres()
//	    defer pg.Terminate()
//	    pool = pg.MustPool(context.Background())
//	    os.Exit(m.Run())
//	}
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"mesa-decision/internal/db"
)

// TestContainer wraps a started container with the address to reach it.
type TestContainer struct {
	Container testcontainers.Container
	Addr      string
}

// MustStartPostgres starts Postgres and applies all migrations. Calls
// os.Exit(1) on failure.
func MustStartPostgres() *TestContainer {
	ctx := context.Background()
	tc := mustStart(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "mesa",
			"POSTGRES_PASSWORD": "mesa",
			"POSTGRES_DB":       "mesa",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432")
	tc.Addr = fmt.Sprintf("postgres://mesa:mesa@%s/mesa?sslmode=disable", tc.Addr)

	if err := db.Migrate(tc.Addr); err != nil {
		fail(tc, "run migrations", err)
	}
	return tc
}

// MustStartRedis starts Redis. Calls os.Exit(1) on failure.
func MustStartRedis() *TestContainer {
	return mustStart(context.Background(), testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}, "6379")
}

// MustPool connects to a Postgres container.
func (tc *TestContainer) MustPool(ctx context.Context) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, tc.Addr)
	if err != nil {
		fail(tc, "connect postgres", err)
	}
	return pool
}

// RedisClient connects to a Redis container.
func (tc *TestContainer) RedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: tc.Addr})
}

// Terminate stops and removes the container.
func (tc *TestContainer) Terminate() {
	_ = tc.Container.Terminate(context.Background())
}

// TestLogger returns a logger that drops everything below warn.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// Discard returns a logger that writes nowhere.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustStart(ctx context.Context, req testcontainers.ContainerRequest, port string) *TestContainer {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "testutil: start %s: %v\n", req.Image, err)
		os.Exit(1)
	}
	tc := &TestContainer{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		fail(tc, "container host", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		fail(tc, "container port", err)
	}
	tc.Addr = host + ":" + mapped.Port()
	return tc
}

func fail(tc *TestContainer, what string, err error) {
	fmt.Fprintf(os.Stderr, "testutil: %s: %v\n", what, err)
	tc.Terminate()
	os.Exit(1)
}
