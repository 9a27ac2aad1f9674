package scoring

import (
	"context"
	"time"

	"insights-server/internal/observability"
)

// Worker runs the scoring backfill on an interval
type Worker struct {
	processor *ScoringProcessor
	logger    *observability.Logger
	stopChan  chan bool
	interval  time.Duration
	batchSize int
}

// NewWorker creates a new scoring Worker
func NewWorker(processor *ScoringProcessor, logger *observability.Logger, interval time.Duration, batchSize int) *Worker {
	return &Worker{
		processor: processor,
		logger:    logger,
		stopChan:  make(chan bool),
		interval:  interval,
		batchSize: batchSize,
	}
}

// Start begins the background worker
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info(ctx, "Starting confidence scoring worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Process immediately on start
	w.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			w.runOnce(ctx)
		case <-w.stopChan:
			w.logger.Info(ctx, "Stopping confidence scoring worker")
			return
		case <-ctx.Done():
			w.logger.Info(ctx, "Context cancelled, stopping confidence scoring worker")
			return
		}
	}
}

// Stop stops the background worker
func (w *Worker) Stop() {
	close(w.stopChan)
}

func (w *Worker) runOnce(ctx context.Context) {
	scored, err := w.processor.ScoreBatch(ctx, w.batchSize)
	if err != nil {
		w.logger.Error(ctx, "scoring batch failed", err)
		return
	}
	if scored > 0 {
		w.logger.Info(ctx, "scored conversations",
			observability.Field{Key: "count", Value: scored},
		)
	}
}
