package daemon

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"irweave/internal/config"
	"irweave/internal/logging"
	"irweave/internal/queue"
)

// Scanner polls the inbox directory and enqueues unseen capture files.
type Scanner struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewScanner constructs an inbox scanner.
func NewScanner(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "inbox"),
	}
}

// Start launches the polling loop.
func (s *Scanner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop terminates the polling loop and waits for it to exit.
func (s *Scanner) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
}

func (s *Scanner) run(ctx context.Context) {
	defer s.wg.Done()

	interval := time.Duration(s.cfg.Workflow.PollInterval) * time.Second
	for {
		if err := s.ScanOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("inbox scan", logging.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

// ScanOnce enqueues every capture file in the inbox that the queue does
// not already track. Files are matched by extension; everything else in
// the directory is ignored.
func (s *Scanner) ScanOnce(ctx context.Context) error {
	entries, err := os.ReadDir(s.cfg.Paths.InboxDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !s.wantedExtension(name) {
			continue
		}
		path := filepath.Join(s.cfg.Paths.InboxDir, name)

		known, err := s.store.Known(ctx, path)
		if err != nil {
			return err
		}
		if known {
			continue
		}

		item, err := s.store.Add(ctx, path)
		if err != nil {
			s.logger.Warn("enqueue capture", logging.String(logging.FieldSource, path), logging.Error(err))
			continue
		}
		s.logger.Info("capture queued",
			logging.Int64(logging.FieldItemID, item.ID),
			logging.String(logging.FieldSource, path),
		)
	}
	return nil
}

func (s *Scanner) wantedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, wanted := range s.cfg.Conversion.Extensions {
		if ext == wanted {
			return true
		}
	}
	return false
}
