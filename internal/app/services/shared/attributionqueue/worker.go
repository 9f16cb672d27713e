package attributionqueue

import (
	"context"
	"time"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the attribution queue into the reservation log on a cron
// cadence. A redis lock keeps a single instance flushing at a time, and a
// rate limiter spaces out the datastore appends.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	queue   contracts.ReservationQueueService
	logRepo contracts.ReservationLogRepository
	limiter *rate.Limiter
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	queue contracts.ReservationQueueService,
	logRepo contracts.ReservationLogRepository,
) *Worker {
	appendsPerSecond := cfg.Reservation.AppendsPerSecond
	if appendsPerSecond <= 0 {
		appendsPerSecond = 1
	}
	return &Worker{
		log:     log,
		cfg:     cfg,
		locker:  lockerSvc,
		queue:   queue,
		logRepo: logRepo,
		limiter: rate.NewLimiter(rate.Limit(appendsPerSecond), appendsPerSecond),
	}
}

// Start schedules the flush loop. An invalid cron spec falls back to a
// 30 second cadence rather than leaving the queue undrained.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Reservation.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("attributionqueue.worker: failed to schedule with provided cron spec; falling back to @every 30s", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 30s", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight work and waits for running jobs to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Reservation.WorkerLockTTLInSeconds) * time.Second
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReservationWorkerLock, ttl)
	if err != nil {
		w.log.Warn("attributionqueue.worker: lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("attributionqueue.worker: lock not acquired; another instance is flushing")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyReservationWorkerLock, token)

	items, err := w.queue.FetchN(ctx, w.cfg.Reservation.WorkerBatchSize)
	if err != nil {
		w.log.Warn("attributionqueue.worker: fetching queued logs failed", zap.Error(err))
		return
	}
	if len(items) == 0 {
		return
	}

	w.log.Info("attributionqueue.worker: flushing queued logs",
		zap.Int(constvars.LoggingEventCountKey, len(items)),
	)

	for _, item := range items {
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}

		entry := item.Log
		if err := w.logRepo.Append(ctx, &entry); err != nil {
			w.handleFailedAppend(ctx, item, err)
			continue
		}
		if err := w.queue.Ack(item.DeliveryTag); err != nil {
			w.log.Warn("attributionqueue.worker: ack failed",
				zap.String(constvars.LoggingReservationIDKey, entry.ReservationID),
				zap.Error(err),
			)
		}
	}
}

func (w *Worker) handleFailedAppend(ctx context.Context, item contracts.QueuedReservationLog, appendErr error) {
	failedCount := item.FailedCount + 1
	w.log.Warn("attributionqueue.worker: append failed",
		zap.String(constvars.LoggingReservationIDKey, item.Log.ReservationID),
		zap.Int(constvars.LoggingFailedCountKey, failedCount),
		zap.Error(appendErr),
	)

	entry := item.Log
	if failedCount >= w.cfg.Reservation.RetryThreshold {
		if err := w.queue.EnqueueToDLQ(ctx, &entry, failedCount); err != nil {
			w.log.Error("attributionqueue.worker: parking on DLQ failed",
				zap.String(constvars.LoggingReservationIDKey, entry.ReservationID),
				zap.Error(err),
			)
			return
		}
	} else {
		if err := w.queue.Reenqueue(ctx, &entry, failedCount); err != nil {
			w.log.Error("attributionqueue.worker: requeue failed",
				zap.String(constvars.LoggingReservationIDKey, entry.ReservationID),
				zap.Error(err),
			)
			return
		}
	}

	// Remove the original delivery only after the copy is safely requeued.
	if err := w.queue.Ack(item.DeliveryTag); err != nil {
		w.log.Warn("attributionqueue.worker: ack after requeue failed",
			zap.String(constvars.LoggingReservationIDKey, entry.ReservationID),
			zap.Error(err),
		)
	}
}
