package testsupport

import (
	"os"
	"testing"

	"locflow/internal/runlog"
)

// MustOpenStore opens a runlog.Store in a fresh data directory and registers
// cleanup.
func MustOpenStore(t testing.TB, dataDir string) *runlog.Store {
	t.Helper()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}
	store, err := runlog.Open(dataDir)
	if err != nil {
		t.Fatalf("runlog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
