package responses

type WhatsAppReservation struct {
	ReservationID string `json:"reservation_id"`
	WhatsAppURL   string `json:"whatsapp_url"`
}

// ReservationLogAck mirrors the minimal body the widget's sendBeacon
// handler accepts.
type ReservationLogAck struct {
	Status        string `json:"status"`
	ReservationID string `json:"reservation_id"`
}
