package contracts

import (
	"context"

	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/dto/requests"
	"kurabi-service/internal/pkg/dto/responses"
)

type ReservationUsecase interface {
	CreateWhatsAppReservation(ctx context.Context, request *requests.WhatsAppReservationRequest) (*responses.WhatsAppReservation, error)
	RecordLog(ctx context.Context, request *requests.ReservationLogRequest) error
}

type ReservationLogRepository interface {
	Append(ctx context.Context, log *models.ReservationLog) error
	FindByReservationID(ctx context.Context, reservationID string) ([]models.ReservationLog, error)
}

// ReservationQueueService buffers attribution rows so a burst of beacons
// never blocks on the datastore. Failed rows are requeued and eventually
// parked on the dead letter queue.
type ReservationQueueService interface {
	Enqueue(ctx context.Context, log *models.ReservationLog) error
	Reenqueue(ctx context.Context, log *models.ReservationLog, failedCount int) error
	EnqueueToDLQ(ctx context.Context, log *models.ReservationLog, failedCount int) error
	FetchN(ctx context.Context, max int) ([]QueuedReservationLog, error)
	Ack(deliveryTag uint64) error
}

type QueuedReservationLog struct {
	Log         models.ReservationLog
	FailedCount int
	DeliveryTag uint64
}
