package constvars

const (
	GetEventsSuccessMessage    = "successfully retrieved events"
	GetCalendarSuccessMessage  = "successfully built calendar"
	CreateEventSuccessMessage  = "successfully created event"
	UpdateEventSuccessMessage  = "successfully updated event"
	DeleteEventSuccessMessage  = "successfully deleted event"
	ReservationSuccessMessage  = "successfully created reservation"
	LogRecordedSuccessMessage  = "successfully recorded reservation log"
)
