package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alimgiray/gexplore/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers []Worker
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc

	syncer       Syncer
	syncInterval time.Duration
	syncWorkers  int
}

// NewWorkerManager creates a new worker manager. A nil syncer starts no
// activity sync worker.
func NewWorkerManager(syncer Syncer, syncInterval time.Duration, syncWorkers int) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:      make([]Worker, 0),
		ctx:          ctx,
		cancel:       cancel,
		syncer:       syncer,
		syncInterval: syncInterval,
		syncWorkers:  syncWorkers,
	}
}

// StartAll starts every configured worker
func (wm *WorkerManager) StartAll() error {
	if wm.syncer == nil || wm.syncWorkers <= 0 {
		logger.Info("Activity sync disabled, no workers started")
		return nil
	}
	if wm.syncInterval <= 0 {
		return fmt.Errorf("activity sync interval must be positive, got %s", wm.syncInterval)
	}

	count := wm.syncWorkers
	if count > 1 {
		logger.Warnf("ACTIVITY_SYNC_WORKERS=%d, running a single activity sync worker", count)
		count = 1
	}

	for i := 0; i < count; i++ {
		worker := NewActivitySyncWorker(fmt.Sprintf("activity-sync-%d", i+1), wm.syncer, wm.syncInterval)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers and waits for them to exit
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).WithField("worker", worker.GetWorkerID()).Error("Error stopping worker")
		}
	}

	wm.wg.Wait()
	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).WithField("worker", worker.GetWorkerID()).Error("Worker stopped with error")
		}
	}()
}

// GetWorkerStatus returns whether each worker is running
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool)
	for _, worker := range wm.workers {
		status[worker.GetWorkerID()] = worker.IsRunning()
	}
	return status
}
