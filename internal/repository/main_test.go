//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"compliance-portal-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is purged after the
// repository integration tests, including when the run is interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
