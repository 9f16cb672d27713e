package requests

type WhatsAppReservationRequest struct {
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title" validate:"required"`
	EventDate  string `json:"event_date" validate:"required,ymd_slash"`
	EventTime  string `json:"event_time" validate:"required,hhmm"`
	EventPrice string `json:"event_price"`
	UTMSource  string `json:"utm_source"`
	UTMMedium  string `json:"utm_medium"`
	UTMContent string `json:"utm_content"`
}

type ReservationLogRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	UTMSource     string `json:"utm_source"`
	UTMMedium     string `json:"utm_medium"`
	UTMContent    string `json:"utm_content"`
}
