// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnrating/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnrating_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// HomeDir is a temporary directory, the database name is always
// TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for database operations
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	opts := []config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptDatabaseDatabase(TestDatabaseName),
	}
	if host := os.Getenv("GNRATING_DATABASE_HOST"); host != "" {
		opts = append(opts, config.OptDatabaseHost(host))
	}
	cfg.Update(opts)
	return cfg
}

// WritePolicy writes policy.yaml into the config directory of
// homeDir.
func WritePolicy(t *testing.T, homeDir, content string) {
	t.Helper()

	path := config.PolicyFilePath(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write policy.yaml: %v", err)
	}
}
