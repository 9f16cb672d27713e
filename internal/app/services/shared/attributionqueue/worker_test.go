package attributionqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/app/models"
)

type stubLocker struct {
	acquired bool
	unlocked bool
}

func (s *stubLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return s.acquired, "token", nil
}

func (s *stubLocker) Unlock(ctx context.Context, key, lockValue string) error {
	s.unlocked = true
	return nil
}

type stubQueue struct {
	items      []contracts.QueuedReservationLog
	requeued   []int
	deadLetter []int
	acked      []uint64
}

func (s *stubQueue) Enqueue(ctx context.Context, log *models.ReservationLog) error { return nil }

func (s *stubQueue) Reenqueue(ctx context.Context, log *models.ReservationLog, failedCount int) error {
	s.requeued = append(s.requeued, failedCount)
	return nil
}

func (s *stubQueue) EnqueueToDLQ(ctx context.Context, log *models.ReservationLog, failedCount int) error {
	s.deadLetter = append(s.deadLetter, failedCount)
	return nil
}

func (s *stubQueue) FetchN(ctx context.Context, max int) ([]contracts.QueuedReservationLog, error) {
	items := s.items
	s.items = nil
	return items, nil
}

func (s *stubQueue) Ack(deliveryTag uint64) error {
	s.acked = append(s.acked, deliveryTag)
	return nil
}

type stubLogRepository struct {
	appendErr error
	appended  []models.ReservationLog
}

func (s *stubLogRepository) Append(ctx context.Context, log *models.ReservationLog) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, *log)
	return nil
}

func (s *stubLogRepository) FindByReservationID(ctx context.Context, reservationID string) ([]models.ReservationLog, error) {
	return nil, nil
}

func workerConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Reservation: config.Reservation{
			WorkerBatchSize:        10,
			RetryThreshold:         3,
			AppendsPerSecond:       100,
			WorkerLockTTLInSeconds: 60,
		},
	}
}

func queuedLog(tag uint64, failedCount int) contracts.QueuedReservationLog {
	return contracts.QueuedReservationLog{
		Log: models.ReservationLog{
			RecordedAt:    time.Now(),
			ReservationID: "R20260828-X7K2P9",
			UTMSource:     "instagram",
		},
		FailedCount: failedCount,
		DeliveryTag: tag,
	}
}

func TestWorkerRunOnce(t *testing.T) {
	t.Run("Flushes Queued Logs And Acks", func(t *testing.T) {
		locker := &stubLocker{acquired: true}
		queue := &stubQueue{items: []contracts.QueuedReservationLog{queuedLog(1, 0), queuedLog(2, 0)}}
		repo := &stubLogRepository{}

		worker := NewWorker(zap.NewNop(), workerConfig(), locker, queue, repo)
		worker.runOnce(context.Background())

		assert.Len(t, repo.appended, 2)
		assert.Equal(t, []uint64{1, 2}, queue.acked)
		assert.True(t, locker.unlocked)
	})

	t.Run("Skips When Lock Not Acquired", func(t *testing.T) {
		locker := &stubLocker{acquired: false}
		queue := &stubQueue{items: []contracts.QueuedReservationLog{queuedLog(1, 0)}}
		repo := &stubLogRepository{}

		worker := NewWorker(zap.NewNop(), workerConfig(), locker, queue, repo)
		worker.runOnce(context.Background())

		assert.Empty(t, repo.appended)
		assert.Len(t, queue.items, 1)
	})

	t.Run("Requeues Failed Append With Incremented Count", func(t *testing.T) {
		locker := &stubLocker{acquired: true}
		queue := &stubQueue{items: []contracts.QueuedReservationLog{queuedLog(1, 0)}}
		repo := &stubLogRepository{appendErr: errors.New("mongo down")}

		worker := NewWorker(zap.NewNop(), workerConfig(), locker, queue, repo)
		worker.runOnce(context.Background())

		assert.Equal(t, []int{1}, queue.requeued)
		assert.Empty(t, queue.deadLetter)
		assert.Equal(t, []uint64{1}, queue.acked)
	})

	t.Run("Parks On DLQ At Retry Threshold", func(t *testing.T) {
		locker := &stubLocker{acquired: true}
		queue := &stubQueue{items: []contracts.QueuedReservationLog{queuedLog(1, 2)}}
		repo := &stubLogRepository{appendErr: errors.New("mongo down")}

		worker := NewWorker(zap.NewNop(), workerConfig(), locker, queue, repo)
		worker.runOnce(context.Background())

		assert.Empty(t, queue.requeued)
		assert.Equal(t, []int{3}, queue.deadLetter)
		assert.Equal(t, []uint64{1}, queue.acked)
	})
}
