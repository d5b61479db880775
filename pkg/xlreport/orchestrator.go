package xlreport

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Orchestrator runs report requests concurrently. A failing request never
// affects its siblings: every dispatched request ends in its own Outcome.
type Orchestrator struct {
	opts   Options
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	reserved map[string]int // derived path -> times handed out
}

// NewOrchestrator creates an Orchestrator. A nil logger discards output.
func NewOrchestrator(opts Options, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		reserved: make(map[string]int),
	}
}

// Run generates every request in parallel and returns once all of them
// have finished. Outcomes are in request order; requests are neither
// cancelled nor retried.
func (o *Orchestrator) Run(requests []models.ReportRequest) []models.Outcome {
	outcomes := make([]models.Outcome, len(requests))
	var g errgroup.Group
	if o.opts.Concurrency > 0 {
		g.SetLimit(o.opts.Concurrency)
	}

	o.logger.Info("Dispatching report requests", zap.Int("count", len(requests)))

	for i, req := range requests {
		outcomes[i] = models.Outcome{
			RequestID: uuid.NewString(),
			Request:   req,
		}
		log := o.logger.With(
			zap.String("request_id", outcomes[i].RequestID),
			zap.String("template", req.TemplatePath),
			zap.Int("rows", req.RowCount))

		if req.RowCount <= 0 {
			outcomes[i].Err = fmt.Errorf("%w: %d", ErrInvalidRowCount, req.RowCount)
			log.Error("Rejected report request", zap.Error(outcomes[i].Err))
			continue
		}

		createdAt := o.now()
		path := o.reservePath(OutputPath(req.TemplatePath, createdAt))
		reqOpts := o.opts
		if reqOpts.Seed != 0 {
			reqOpts.Seed += int64(i)
		}

		i, req := i, req // per-iteration copies (go directive is pre-1.22 loopvar semantics)
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					outcomes[i].Err = NewGenerationError(req.TemplatePath, StageWrite, fmt.Errorf("panic: %v", r))
					log.Error("Report generation panicked", zap.Any("panic", r))
				}
			}()

			log.Info("Generating report", zap.String("output", path))
			if err := Generate(req, path, reqOpts); err != nil {
				outcomes[i].Err = err
				log.Error("Report generation failed", zap.Error(err))
				return nil
			}
			outcomes[i].Artifact = &models.OutputArtifact{Path: path, CreatedAt: createdAt}
			log.Info("Report generated", zap.String("output", path))
			return nil
		})
	}

	// workers never return errors; Wait is the join point
	_ = g.Wait()

	failed := 0
	for _, out := range outcomes {
		if !out.Success() {
			failed++
		}
	}
	o.logger.Info("Report requests finished",
		zap.Int("succeeded", len(outcomes)-failed),
		zap.Int("failed", failed))

	return outcomes
}

// reservePath hands out path, or path with a _2, _3, ... suffix when it was
// already handed out by this Orchestrator (same template within one second).
func (o *Orchestrator) reservePath(path string) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := o.reserved[path] + 1
	o.reserved[path] = n
	if n == 1 {
		return path
	}
	return withSuffix(path, n)
}
