package workers

import (
	"context"
	"time"

	"github.com/alimgiray/gexplore/internal/services"
	"github.com/alimgiray/gexplore/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Syncer imports contribution activity for the window ending on today.
type Syncer interface {
	Sync(ctx context.Context, today time.Time) (*services.SyncResult, error)
}

// ActivitySyncWorker imports GitHub activity once at start and then on every interval
type ActivitySyncWorker struct {
	*BaseWorker
	syncer   Syncer
	interval time.Duration
	now      func() time.Time
}

// NewActivitySyncWorker creates a new activity sync worker
func NewActivitySyncWorker(workerID string, syncer Syncer, interval time.Duration) *ActivitySyncWorker {
	return &ActivitySyncWorker{
		BaseWorker: NewBaseWorker(workerID, KindActivitySync),
		syncer:     syncer,
		interval:   interval,
		now:        time.Now,
	}
}

// Start begins the sync loop
func (w *ActivitySyncWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)

	log := logger.WithFields(logrus.Fields{"worker": w.WorkerID, "interval": w.interval.String()})
	log.Info("Activity sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.syncOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Activity sync worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			log.Info("Activity sync worker stopping")
			return nil
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

// syncOnce runs one import. Failures are logged and retried on the next tick.
func (w *ActivitySyncWorker) syncOnce(ctx context.Context) {
	result, err := w.syncer.Sync(ctx, w.now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.WithError(err).WithField("worker", w.WorkerID).Error("Activity sync failed")
		return
	}

	logger.WithFields(logrus.Fields{
		"worker":  w.WorkerID,
		"commits": result.Commits,
		"days":    result.ActiveDays,
	}).Debug("Activity sync finished")
}
