package models

import (
	"time"

	"kurabi-service/internal/pkg/dto/responses"
)

// Event is the bookable tour entry as stored in MongoDB. Date and the two
// time fields stay as local-calendar strings (2006/01/02 and 15:04); the
// calendar pipeline resolves them against the configured timezone.
type Event struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string    `json:"title" bson:"title"`
	Subtitle       string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Date           string    `json:"date" bson:"date"`
	StartTime      string    `json:"start_time" bson:"start_time"`
	EndTime        string    `json:"end_time" bson:"end_time"`
	Price          string    `json:"price,omitempty" bson:"price,omitempty"`
	MeetingPoint   string    `json:"meeting_point,omitempty" bson:"meeting_point,omitempty"`
	RemainingSpots *int      `json:"remaining_spots,omitempty" bson:"remaining_spots,omitempty"`
	IconSVG        string    `json:"icon_svg,omitempty" bson:"icon_svg,omitempty"`
	PhotoObjects   []string  `json:"photo_objects,omitempty" bson:"photo_objects,omitempty"`
	Flow           []string  `json:"flow,omitempty" bson:"flow,omitempty"`
	Features       []string  `json:"features,omitempty" bson:"features,omitempty"`
	Includes       []string  `json:"includes,omitempty" bson:"includes,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

func (e Event) ConvertIntoResponse(photoURLs []string) responses.Event {
	response := responses.Event{
		EventID:        e.ID,
		Title:          e.Title,
		Subtitle:       e.Subtitle,
		Date:           e.Date,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Price:          e.Price,
		MeetingPoint:   e.MeetingPoint,
		RemainingSpots: e.RemainingSpots,
		IconSVG:        e.IconSVG,
		PhotoURLs:      photoURLs,
		Flow:           e.Flow,
		Features:       e.Features,
		Includes:       e.Includes,
	}
	if !e.CreatedAt.IsZero() {
		response.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	if !e.UpdatedAt.IsZero() {
		response.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return response
}
