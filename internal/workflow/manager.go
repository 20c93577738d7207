package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"irweave/internal/config"
	"irweave/internal/converter"
	"irweave/internal/logging"
	"irweave/internal/queue"
)

// Manager processes queued captures in the background.
type Manager struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	processed atomic.Int64
	failed    atomic.Int64
}

// StatusSummary reports manager runtime counters.
type StatusSummary struct {
	Running   bool
	Processed int64
	Failed    int64
}

// NewManager constructs a workflow manager.
func NewManager(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}
}

// Start begins background processing.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return errors.New("workflow already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true

	m.wg.Add(1)
	go m.run(runCtx)
	return nil
}

// Stop terminates background processing and waits for completion.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
}

// Status reports runtime counters.
func (m *Manager) Status() StatusSummary {
	m.mu.Lock()
	running := m.running
	m.mu.Unlock()
	return StatusSummary{
		Running:   running,
		Processed: m.processed.Load(),
		Failed:    m.failed.Load(),
	}
}

func (m *Manager) run(ctx context.Context) {
	defer m.wg.Done()

	interval := time.Duration(m.cfg.Workflow.PollInterval) * time.Second
	for {
		item, err := m.store.NextPending(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.logger.Warn("claim next item", logging.Error(err))
		}
		if item == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
			continue
		}

		m.process(ctx, item)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// ProcessOne claims and converts a single pending item. Returns false when
// the queue had no pending work. Used by the CLI's one-shot drain path and
// by tests that cannot wait on the poll loop.
func (m *Manager) ProcessOne(ctx context.Context) (bool, error) {
	item, err := m.store.NextPending(ctx)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}
	m.process(ctx, item)
	return true, nil
}

func (m *Manager) process(ctx context.Context, item *queue.Item) {
	logger := m.logger.With(
		logging.Int64(logging.FieldItemID, item.ID),
		logging.String(logging.FieldSource, item.SourcePath),
	)
	logger.Info("converting capture", logging.Int("attempt", item.Attempts))

	opts := converter.Options{
		Brand:      m.cfg.Conversion.DefaultBrand,
		Model:      m.cfg.Conversion.DefaultModel,
		TidyLabels: m.cfg.Conversion.TidyLabels,
	}
	// Overrides win over scanned values, so only pin brand/model when the
	// operator changed them from the placeholders.
	if opts.Brand == "Brand" {
		opts.Brand = ""
	}
	if opts.Model == "ItemX" {
		opts.Model = ""
	}

	result, err := converter.RunFile(item.SourcePath, opts)
	if err != nil {
		m.fail(ctx, logger, item, err)
		return
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	outputPath, err := converter.Write(m.cfg.Paths.OutputDir, result)
	if err != nil {
		m.fail(ctx, logger, item, err)
		return
	}

	if err := m.store.MarkConverted(ctx, item.ID, result.Brand, result.Model, outputPath, len(result.Entries)); err != nil {
		logger.Error("record conversion", logging.Error(err))
		return
	}
	m.processed.Add(1)
	logger.Info("capture converted",
		logging.String("output", outputPath),
		logging.Int("buttons", len(result.Entries)),
	)
}

func (m *Manager) fail(ctx context.Context, logger *slog.Logger, item *queue.Item, cause error) {
	m.failed.Add(1)
	logger.Error("conversion failed", logging.Error(cause))
	if err := m.store.MarkFailed(ctx, item.ID, m.cfg.Workflow.MaxAttempts, cause.Error()); err != nil {
		logger.Error("record failure", logging.Error(err))
	}
}
