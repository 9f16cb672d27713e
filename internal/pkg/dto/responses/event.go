package responses

type Event struct {
	EventID        string   `json:"event_id"`
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Price          string   `json:"price,omitempty"`
	MeetingPoint   string   `json:"meeting_point,omitempty"`
	RemainingSpots *int     `json:"remaining_spots,omitempty"`
	IconSVG        string   `json:"icon_svg,omitempty"`
	PhotoURLs      []string `json:"photo_urls,omitempty"`
	Flow           []string `json:"flow,omitempty"`
	Features       []string `json:"features,omitempty"`
	Includes       []string `json:"includes,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}
