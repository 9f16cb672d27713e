package requests

type CreateEventRequest struct {
	Title          string   `json:"title" validate:"required"`
	Subtitle       string   `json:"subtitle"`
	Date           string   `json:"date" validate:"required,ymd_slash"`
	StartTime      string   `json:"start_time" validate:"required,hhmm"`
	EndTime        string   `json:"end_time" validate:"required,hhmm"`
	Price          string   `json:"price"`
	MeetingPoint   string   `json:"meeting_point"`
	RemainingSpots *int     `json:"remaining_spots" validate:"omitempty,min=0"`
	IconSVG        string   `json:"icon_svg"`
	PhotoObjects   []string `json:"photo_objects"`
	Flow           []string `json:"flow"`
	Features       []string `json:"features"`
	Includes       []string `json:"includes"`
}

type UpdateEventRequest struct {
	Title          string   `json:"title" validate:"required"`
	Subtitle       string   `json:"subtitle"`
	Date           string   `json:"date" validate:"required,ymd_slash"`
	StartTime      string   `json:"start_time" validate:"required,hhmm"`
	EndTime        string   `json:"end_time" validate:"required,hhmm"`
	Price          string   `json:"price"`
	MeetingPoint   string   `json:"meeting_point"`
	RemainingSpots *int     `json:"remaining_spots" validate:"omitempty,min=0"`
	IconSVG        string   `json:"icon_svg"`
	PhotoObjects   []string `json:"photo_objects"`
	Flow           []string `json:"flow"`
	Features       []string `json:"features"`
	Includes       []string `json:"includes"`
}
