// internal/app/system/workers/foldercounts.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/pulseboard/pulseboard/internal/app/store/email"
	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// FolderCounts is a background worker that keeps the denormalized email
// folder counts in step with the emails collection.
type FolderCounts struct {
	stores   *email.Stores
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewFolderCounts creates a new folder count worker that refreshes every
// interval.
func NewFolderCounts(stores *email.Stores, logger *zap.Logger, interval time.Duration) *FolderCounts {
	return &FolderCounts{
		stores:   stores,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop.
func (w *FolderCounts) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("folder count worker started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *FolderCounts) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("folder count worker stopped")
}

func (w *FolderCounts) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *FolderCounts) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Long())
	defer cancel()

	if err := w.stores.RefreshFolderCounts(ctx); err != nil {
		w.log.Error("failed to refresh folder counts", zap.Error(err))
	}
}
