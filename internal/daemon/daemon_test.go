package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"irweave/internal/config"
	"irweave/internal/logging"
	"irweave/internal/queue"
	"irweave/internal/testsupport"
	"irweave/internal/workflow"
)

func newTestDaemon(t *testing.T, cfg *config.Config) (*Daemon, *queue.Store) {
	t.Helper()
	store := testsupport.MustOpenStore(t, cfg)

	logger := logging.NewNop()
	d, err := New(cfg, store, logger, workflow.NewManager(cfg, store, logger))
	if err != nil {
		t.Fatal(err)
	}
	return d, store
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := New(nil, nil, nil, nil); err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := newTestDaemon(t, cfg)

	if err := d.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !d.Status().Running {
		t.Fatal("daemon should report running")
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("daemon should report stopped")
	}
}

func TestStartFailsWhenInboxMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, _ := newTestDaemon(t, cfg)

	if err := os.RemoveAll(cfg.Paths.InboxDir); err != nil {
		t.Fatal(err)
	}
	if err := d.Start(context.Background()); err == nil {
		d.Stop()
		t.Fatal("expected start to fail preflight with missing inbox")
	}
}

func TestSecondInstanceRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first, store := newTestDaemon(t, cfg)

	if err := first.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer first.Stop()

	logger := logging.NewNop()
	second, err := New(cfg, store, logger, workflow.NewManager(cfg, store, logger))
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Start(context.Background()); err == nil {
		second.Stop()
		t.Fatal("second instance should fail to acquire the lock")
	}
}

func TestStartRequeuesStaleItems(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, store := newTestDaemon(t, cfg)
	ctx := context.Background()

	testsupport.Enqueue(t, store, filepath.Join(cfg.Paths.InboxDir, "missing.txt"))
	if _, err := store.NextPending(ctx); err != nil {
		t.Fatal(err)
	}

	if err := d.Start(ctx); err != nil {
		t.Fatal(err)
	}
	d.Stop()

	// The stale converting item must have been reset before the workflow
	// started; by now it is either pending again or already retried.
	summary, err := store.Health(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Converting != 0 || summary.Total != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}
