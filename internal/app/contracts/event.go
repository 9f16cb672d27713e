package contracts

import (
	"context"
	"time"

	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/dto/requests"
	"kurabi-service/internal/pkg/dto/responses"
)

type EventUsecase interface {
	FindAll(ctx context.Context) ([]responses.Event, error)
	GetCalendar(ctx context.Context, now time.Time) (*responses.CalendarBoard, error)
	CreateEvent(ctx context.Context, request *requests.CreateEventRequest) (*responses.Event, error)
	UpdateEvent(ctx context.Context, eventID string, request *requests.UpdateEventRequest) (*responses.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type EventRepository interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, eventID string) (*models.Event, error)
	Insert(ctx context.Context, event *models.Event) (string, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, eventID string) error
}
