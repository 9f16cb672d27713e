package responses

// CalendarBoard is the fully laid out widget payload: one column per day,
// every event segment already positioned in percentages so the client only
// has to paint absolutely positioned blocks.
type CalendarBoard struct {
	Timezone       string        `json:"timezone"`
	WindowStart    string        `json:"window_start"`
	WindowEnd      string        `json:"window_end"`
	GeneratedAt    string        `json:"generated_at"`
	WhatsAppNumber string        `json:"whatsapp_number,omitempty"`
	Days           []CalendarDay `json:"days"`
}

type CalendarDay struct {
	Date   string          `json:"date"`
	Label  string          `json:"label"`
	Events []CalendarEvent `json:"events"`
}

type CalendarEvent struct {
	EventID        string   `json:"event_id"`
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle,omitempty"`
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
	Inactive       bool     `json:"inactive"`
	Continued      bool     `json:"continued"`
	Top            float64  `json:"top"`
	Height         float64  `json:"height"`
	Left           float64  `json:"left"`
	Width          float64  `json:"width"`
	ZIndex         int      `json:"z_index"`
}
