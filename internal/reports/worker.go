package reports

import (
	"context"
	"time"

	"insights-server/internal/observability"
)

// DigestWorker runs the weekly digest on an interval
type DigestWorker struct {
	processor *ReportProcessor
	logger    *observability.Logger
	stopChan  chan bool
	interval  time.Duration
}

// NewWorker creates a new DigestWorker
func NewWorker(processor *ReportProcessor, logger *observability.Logger, interval time.Duration) *DigestWorker {
	return &DigestWorker{
		processor: processor,
		logger:    logger,
		stopChan:  make(chan bool),
		interval:  interval,
	}
}

// Start begins the background worker
func (w *DigestWorker) Start(ctx context.Context) {
	w.logger.Info(ctx, "Starting weekly digest worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runOnce(ctx)
		case <-w.stopChan:
			w.logger.Info(ctx, "Stopping weekly digest worker")
			return
		case <-ctx.Done():
			w.logger.Info(ctx, "Context cancelled, stopping weekly digest worker")
			return
		}
	}
}

// Stop stops the background worker
func (w *DigestWorker) Stop() {
	close(w.stopChan)
}

func (w *DigestWorker) runOnce(ctx context.Context) {
	w.logger.Info(ctx, "Sending weekly digests")

	if err := w.processor.SendWeeklyDigests(ctx); err != nil {
		w.logger.Error(ctx, "failed to send weekly digests", err)
	}

	w.logger.Info(ctx, "Finished sending weekly digests")
}
