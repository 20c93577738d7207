package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"github.com/gofrs/flock"

	"irweave/internal/config"
	"irweave/internal/logging"
	"irweave/internal/preflight"
	"irweave/internal/queue"
	"irweave/internal/workflow"
)

// Daemon runs the inbox scanner and workflow manager as a single instance.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *queue.Store
	workflow *workflow.Manager
	scanner  *Scanner

	lockPath string
	lock     *flock.Flock
	pidPath  string

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	Workflow     workflow.StatusSummary
	QueueDBPath  string
	LockFilePath string
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, store *queue.Store, logger *slog.Logger, wf *workflow.Manager) (*Daemon, error) {
	if cfg == nil || store == nil || logger == nil || wf == nil {
		return nil, errors.New("daemon requires config, store, logger, and workflow manager")
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "irweaved.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		store:    store,
		workflow: wf,
		scanner:  NewScanner(cfg, store, logger),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		pidPath:  filepath.Join(cfg.Paths.LogDir, "irweave.pid"),
	}, nil
}

// Start acquires the daemon lock and launches background processing.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	checks := preflight.CheckAll(d.cfg)
	if !preflight.AllPassed(checks) {
		for _, check := range checks {
			if !check.Passed {
				d.logger.Error("preflight check failed",
					logging.String("check", check.Name),
					logging.String("detail", check.Detail),
				)
			}
		}
		return errors.New("preflight checks failed")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another irweave daemon instance is already running")
	}

	if err := os.WriteFile(d.pidPath, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		_ = d.lock.Unlock()
		return fmt.Errorf("write pid file: %w", err)
	}

	reset, err := d.store.ResetStale(ctx)
	if err != nil {
		d.release()
		return fmt.Errorf("reset stale items: %w", err)
	}
	if reset > 0 {
		d.logger.Info("requeued interrupted conversions", logging.Int64("count", reset))
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.workflow.Start(d.ctx); err != nil {
		d.release()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return fmt.Errorf("start workflow: %w", err)
	}
	d.scanner.Start(d.ctx)

	d.running.Store(true)
	d.logger.Info("daemon started",
		logging.String("inbox", d.cfg.Paths.InboxDir),
		logging.String("queue_db", d.store.Path()),
	)
	return nil
}

// Stop halts background processing and releases the lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	d.cancel()
	d.scanner.Stop()
	d.workflow.Stop()
	d.release()
	d.running.Store(false)
	d.logger.Info("daemon stopped")
}

// Wait blocks until the daemon context is cancelled.
func (d *Daemon) Wait() {
	if d.ctx == nil {
		return
	}
	<-d.ctx.Done()
}

// Status reports runtime information.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		Workflow:     d.workflow.Status(),
		QueueDBPath:  d.store.Path(),
		LockFilePath: d.lockPath,
	}
}

func (d *Daemon) release() {
	_ = os.Remove(d.pidPath)
	_ = d.lock.Unlock()
}
