package models

import "time"

// ReservationLog is an append-only attribution row. Rows are never updated
// or deleted once written.
type ReservationLog struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	RecordedAt    time.Time `json:"recorded_at" bson:"recorded_at"`
	ReservationID string    `json:"reservation_id" bson:"reservation_id"`
	UTMSource     string    `json:"utm_source,omitempty" bson:"utm_source,omitempty"`
	UTMMedium     string    `json:"utm_medium,omitempty" bson:"utm_medium,omitempty"`
	UTMContent    string    `json:"utm_content,omitempty" bson:"utm_content,omitempty"`
}
