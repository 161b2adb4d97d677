package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"locflow/internal/runlog"
	"locflow/internal/testsupport"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	body := `
[repository]
base_url = "https://site-api.example.com"
api_token = "test-token"
source_locale = "en"

[paths]
data_dir = "` + filepath.Join(base, "data") + `"
log_dir = "` + filepath.Join(base, "logs") + `"
export_dir = "` + filepath.Join(base, "exports") + `"
`
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEnsureConfig(t *testing.T) {
	path := writeTestConfig(t)
	ctx := newCommandContext(&path)

	cfg, err := ctx.ensureConfig()
	if err != nil {
		t.Fatalf("ensureConfig: %v", err)
	}
	if cfg.Repository.SourceLocale != "en" {
		t.Errorf("config = %+v", cfg.Repository)
	}
	if info, err := os.Stat(cfg.Paths.DataDir); err != nil || !info.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}

	// The load is memoized; a second call returns the same value.
	again, err := ctx.ensureConfig()
	if err != nil || again != cfg {
		t.Errorf("second call = %p, want cached %p", again, cfg)
	}
}

func TestOpenStoreRecordsHistory(t *testing.T) {
	path := writeTestConfig(t)
	ctx := newCommandContext(&path)

	store, err := ctx.openStore()
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer store.Close()

	log := runlog.New(runlog.ModeExport, "en", "", false)
	log.OK("export", runlog.TypeExport, "r1")
	id, err := store.Save(context.Background(), log.Summary())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg, _ := ctx.ensureConfig()
	reopened := testsupport.MustOpenStore(t, cfg.Paths.DataDir)
	run, err := reopened.Get(context.Background(), id)
	if err != nil || run == nil {
		t.Fatalf("run not persisted: %v", err)
	}
	if run.Export.OK != 1 {
		t.Errorf("run = %+v", run)
	}
}

func TestAcquireRunLockExclusive(t *testing.T) {
	path := writeTestConfig(t)
	first := newCommandContext(&path)
	second := newCommandContext(&path)

	release, err := first.acquireRunLock()
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	if _, err := second.acquireRunLock(); err == nil {
		t.Fatal("second lock acquired while first held")
	}

	release()
	release2, err := second.acquireRunLock()
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	release2()
}
