package reservations

import (
	"context"
	"time"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/dto/requests"
	"kurabi-service/internal/pkg/dto/responses"
	"kurabi-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reservationUsecase struct {
	LogRepository   contracts.ReservationLogRepository
	QueueService    contracts.ReservationQueueService
	WhatsAppService contracts.WhatsAppService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	location        *time.Location
}

func NewReservationUsecase(
	logRepository contracts.ReservationLogRepository,
	queueService contracts.ReservationQueueService,
	whatsAppService contracts.WhatsAppService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.ReservationUsecase, error) {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, err
	}
	return &reservationUsecase{
		LogRepository:   logRepository,
		QueueService:    queueService,
		WhatsAppService: whatsAppService,
		InternalConfig:  internalConfig,
		Log:             logger,
		location:        location,
	}, nil
}

// CreateWhatsAppReservation mints a reservation token, records the
// attribution row, and hands back the deep link the widget opens.
func (uc *reservationUsecase) CreateWhatsAppReservation(ctx context.Context, request *requests.WhatsAppReservationRequest) (*responses.WhatsAppReservation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.CreateWhatsAppReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	reservationID, err := utils.GenerateReservationID(now, uc.location)
	if err != nil {
		return nil, err
	}

	uc.recordRow(ctx, &models.ReservationLog{
		RecordedAt:    now,
		ReservationID: reservationID,
		UTMSource:     request.UTMSource,
		UTMMedium:     request.UTMMedium,
		UTMContent:    request.UTMContent,
	})

	link := uc.WhatsAppService.BuildReservationLink(reservationID, request)

	uc.Log.Info("reservationUsecase.CreateWhatsAppReservation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)
	return &responses.WhatsAppReservation{
		ReservationID: reservationID,
		WhatsAppURL:   link,
	}, nil
}

func (uc *reservationUsecase) RecordLog(ctx context.Context, request *requests.ReservationLogRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.RecordLog called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, request.ReservationID),
	)

	uc.recordRow(ctx, &models.ReservationLog{
		RecordedAt:    time.Now(),
		ReservationID: request.ReservationID,
		UTMSource:     request.UTMSource,
		UTMMedium:     request.UTMMedium,
		UTMContent:    request.UTMContent,
	})
	return nil
}

// recordRow prefers the queue so beacon bursts never wait on the datastore.
// If the broker is unreachable the row is appended directly; losing an
// attribution row costs more than one slow request.
func (uc *reservationUsecase) recordRow(ctx context.Context, row *models.ReservationLog) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.QueueService.Enqueue(ctx, row)
	if err == nil {
		return
	}
	uc.Log.Warn("reservationUsecase.recordRow enqueue failed, appending directly",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, row.ReservationID),
		zap.Error(err),
	)

	if err := uc.LogRepository.Append(ctx, row); err != nil {
		uc.Log.Error("reservationUsecase.recordRow direct append failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReservationIDKey, row.ReservationID),
			zap.Error(err),
		)
	}
}
