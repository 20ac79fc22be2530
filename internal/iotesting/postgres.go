//go:build integration

package iotesting

import (
	"context"
	"testing"
	"time"

	"github.com/gnames/gnrating/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartPostgres launches a disposable PostgreSQL container and returns
// a test configuration pointing at it. The container is terminated
// when the test finishes.
func StartPostgres(t *testing.T) *config.Config {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       TestDatabaseName,
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := GetTestConfig(t)
	cfg.Update([]config.Option{
		config.OptDatabaseHost(host),
		config.OptDatabasePort(port.Int()),
		config.OptDatabaseUser("postgres"),
		config.OptDatabasePassword("postgres"),
		config.OptDatabaseSSLMode("disable"),
	})
	return cfg
}
