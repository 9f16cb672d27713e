package events

import (
	"context"
	"fmt"
	"time"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/dto/requests"
	"kurabi-service/internal/pkg/dto/responses"
	"kurabi-service/internal/pkg/exceptions"
	"kurabi-service/internal/pkg/timegrid"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	eventDateFormat = "2006/01/02"
	eventTimeFormat = "15:04"
)

type eventUsecase struct {
	EventRepository contracts.EventRepository
	RedisRepository contracts.RedisRepository
	Storage         contracts.Storage
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	grid            *timegrid.Context
}

func NewEventUsecase(
	eventRepository contracts.EventRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.EventUsecase, error) {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, err
	}
	return &eventUsecase{
		EventRepository: eventRepository,
		RedisRepository: redisRepository,
		Storage:         storage,
		InternalConfig:  internalConfig,
		Log:             logger,
		grid:            timegrid.NewContext(location),
	}, nil
}

func (uc *eventUsecase) FindAll(ctx context.Context) ([]responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("eventUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	events, err := uc.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Event, len(events))
	for i, event := range events {
		response[i] = event.ConvertIntoResponse(uc.presignPhotos(ctx, event))
	}

	uc.Log.Info("eventUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEventCountKey, len(response)),
	)
	return response, nil
}

// GetCalendar lays out the rolling day window. The caller supplies now so the
// board is reproducible; booking cutoff and day labels both derive from it.
func (uc *eventUsecase) GetCalendar(ctx context.Context, now time.Time) (*responses.CalendarBoard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("eventUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	events, err := uc.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	days := uc.grid.Days(now, uc.InternalConfig.Calendar.WindowDays)

	var segments []timegrid.Segment
	for i, event := range events {
		segments = append(segments, uc.grid.Normalize(i, timegrid.RawEvent{
			Day:   event.Date,
			Start: event.StartTime,
			End:   event.EndTime,
		})...)
	}
	buckets := uc.grid.BucketByDay(segments, days)

	cutoff := now.Add(time.Duration(uc.InternalConfig.Calendar.CutoffMinutesBeforeStart) * time.Minute)

	board := &responses.CalendarBoard{
		Timezone:       uc.InternalConfig.App.Timezone,
		WindowStart:    days[0].Format(eventDateFormat),
		WindowEnd:      days[len(days)-1].Format(eventDateFormat),
		GeneratedAt:    now.In(uc.grid.Location()).Format(time.RFC3339),
		WhatsAppNumber: uc.InternalConfig.WhatsApp.Number,
		Days:           make([]responses.CalendarDay, len(days)),
	}

	segmentCount := 0
	for i, day := range days {
		window := uc.grid.DayWindow(day,
			uc.InternalConfig.Calendar.DayWindowStartMinutes,
			uc.InternalConfig.Calendar.DayWindowEndMinutes,
		)
		positioned := timegrid.LayoutDay(buckets[i], window, uc.InternalConfig.Calendar.MinEventHeightPercent)
		segmentCount += len(positioned)

		dayEvents := make([]responses.CalendarEvent, 0, len(positioned))
		for z, placed := range positioned {
			event := events[placed.Index]
			dayEvents = append(dayEvents, uc.buildCalendarEvent(ctx, event, placed, day, cutoff, z))
		}

		board.Days[i] = responses.CalendarDay{
			Date:   day.Format(eventDateFormat),
			Label:  uc.dayLabel(day, days[0]),
			Events: dayEvents,
		}
	}

	uc.Log.Info("eventUsecase.GetCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEventCountKey, len(events)),
		zap.Int(constvars.LoggingSegmentCountKey, segmentCount),
	)
	return board, nil
}

func (uc *eventUsecase) CreateEvent(ctx context.Context, request *requests.CreateEventRequest) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("eventUsecase.CreateEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	event := &models.Event{
		Title:          request.Title,
		Subtitle:       request.Subtitle,
		Date:           request.Date,
		StartTime:      request.StartTime,
		EndTime:        request.EndTime,
		Price:          request.Price,
		MeetingPoint:   request.MeetingPoint,
		RemainingSpots: request.RemainingSpots,
		IconSVG:        request.IconSVG,
		PhotoObjects:   request.PhotoObjects,
		Flow:           request.Flow,
		Features:       request.Features,
		Includes:       request.Includes,
	}

	eventID, err := uc.EventRepository.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = eventID

	if err := uc.invalidateCache(ctx); err != nil {
		return nil, err
	}

	uc.Log.Info("eventUsecase.CreateEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)
	response := event.ConvertIntoResponse(uc.presignPhotos(ctx, *event))
	return &response, nil
}

func (uc *eventUsecase) UpdateEvent(ctx context.Context, eventID string, request *requests.UpdateEventRequest) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("eventUsecase.UpdateEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	existing, err := uc.EventRepository.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrEventNotFound(fmt.Errorf("event %s not found", eventID))
	}

	event := &models.Event{
		ID:             eventID,
		Title:          request.Title,
		Subtitle:       request.Subtitle,
		Date:           request.Date,
		StartTime:      request.StartTime,
		EndTime:        request.EndTime,
		Price:          request.Price,
		MeetingPoint:   request.MeetingPoint,
		RemainingSpots: request.RemainingSpots,
		IconSVG:        request.IconSVG,
		PhotoObjects:   request.PhotoObjects,
		Flow:           request.Flow,
		Features:       request.Features,
		Includes:       request.Includes,
		CreatedAt:      existing.CreatedAt,
	}

	if err := uc.EventRepository.Update(ctx, event); err != nil {
		return nil, err
	}

	if err := uc.invalidateCache(ctx); err != nil {
		return nil, err
	}

	uc.Log.Info("eventUsecase.UpdateEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)
	response := event.ConvertIntoResponse(uc.presignPhotos(ctx, *event))
	return &response, nil
}

func (uc *eventUsecase) DeleteEvent(ctx context.Context, eventID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("eventUsecase.DeleteEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	if err := uc.EventRepository.Delete(ctx, eventID); err != nil {
		return err
	}
	return uc.invalidateCache(ctx)
}

// fetchEvents is the cache-aside read path for the event list.
func (uc *eventUsecase) fetchEvents(ctx context.Context) ([]models.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var events []models.Event

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyEventList)
	if err != nil {
		uc.Log.Error("eventUsecase.fetchEvents error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if cached == "" {
		uc.Log.Info("eventUsecase.fetchEvents no data found in Redis, fetching from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		events, err = uc.EventRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		ttl := time.Duration(uc.InternalConfig.Calendar.CacheTTLInSeconds) * time.Second
		if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyEventList, events, ttl); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal([]byte(cached), &events); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return events, nil
}

func (uc *eventUsecase) invalidateCache(ctx context.Context) error {
	return uc.RedisRepository.Delete(ctx, constvars.RedisKeyEventList)
}

// presignPhotos resolves stored object names into time-limited URLs. A photo
// that fails to presign is skipped so one bad object never hides the event.
func (uc *eventUsecase) presignPhotos(ctx context.Context, event models.Event) []string {
	if len(event.PhotoObjects) == 0 {
		return nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour

	urls := make([]string, 0, len(event.PhotoObjects))
	for _, objectName := range event.PhotoObjects {
		presigned, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
		if err != nil {
			uc.Log.Warn("eventUsecase.presignPhotos error presigning object",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, objectName),
				zap.Error(err),
			)
			continue
		}
		urls = append(urls, presigned)
	}
	return urls
}

func (uc *eventUsecase) buildCalendarEvent(
	ctx context.Context,
	event models.Event,
	placed timegrid.PositionedSegment,
	day time.Time,
	cutoff time.Time,
	zIndex int,
) responses.CalendarEvent {
	inactive := false
	if event.RemainingSpots != nil && *event.RemainingSpots == 0 {
		inactive = true
	}
	if eventStart, err := time.ParseInLocation(eventDateFormat+" "+eventTimeFormat, event.Date+" "+event.StartTime, uc.grid.Location()); err == nil {
		if eventStart.Before(cutoff) {
			inactive = true
		}
	}

	return responses.CalendarEvent{
		EventID:        event.ID,
		Title:          event.Title,
		Subtitle:       event.Subtitle,
		StartTime:      placed.Start.Format(eventTimeFormat),
		EndTime:        placed.End.Format(eventTimeFormat),
		Price:          event.Price,
		MeetingPoint:   event.MeetingPoint,
		RemainingSpots: event.RemainingSpots,
		IconSVG:        event.IconSVG,
		PhotoURLs:      uc.presignPhotos(ctx, event),
		Flow:           event.Flow,
		Features:       event.Features,
		Includes:       event.Includes,
		Inactive:       inactive,
		Continued:      event.Date != day.Format(eventDateFormat),
		Top:            placed.Top,
		Height:         placed.Height,
		Left:           placed.Left,
		Width:          placed.Width,
		ZIndex:         zIndex + 1,
	}
}

// dayLabel mirrors the widget's column headers: Today, Tomorrow, then
// weekday plus DD/MM.
func (uc *eventUsecase) dayLabel(day, today time.Time) string {
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return fmt.Sprintf("%s %02d/%02d", day.Weekday().String(), day.Day(), int(day.Month()))
	}
}
