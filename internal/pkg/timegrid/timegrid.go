// Package timegrid turns raw booking events into the positioned, non-overlapping
// column layout the calendar widget renders. It is pure: the caller supplies the
// clock, the visible window and the formatting context, and identical input
// always produces identical output.
package timegrid

import "time"

const (
	dayFormat     = "2006/01/02"
	dayTimeFormat = "2006/01/02 15:04"

	// Visual gap between columns of the same overlap group, in percent of the
	// day lane width. Halved at the group's outer edges.
	columnGapPercent = 2.0

	// A positioned segment never renders shorter than this, so it stays clickable.
	minRenderHeightPercent = 1.0
)

// RawEvent is the externally supplied event record. Display fields are not
// interpreted here; callers keep them and join back through Segment.Index.
type RawEvent struct {
	Day   string // calendar day, YYYY/MM/DD
	Start string // time of day, HH:MM
	End   string // time of day, HH:MM
}

// Segment is a single day's portion of an event's time span. A cross-midnight
// event yields two segments, each confined to one calendar day.
type Segment struct {
	Day   time.Time // midnight of the owning calendar day
	Start time.Time
	End   time.Time
	Index int // position of the source event in the caller's input
}

// Window is the visible clock-time range of one day, e.g. 05:30 to 21:00.
type Window struct {
	Start time.Time
	End   time.Time
}

// PositionedSegment carries the final percentage-based geometry for one
// segment. Top/Height/Left/Width are percentages of the day lane.
type PositionedSegment struct {
	Segment
	Column  int
	Columns int
	Top     float64
	Height  float64
	Left    float64
	Width   float64
}

// Context holds the fixed location all day math is anchored to. It replaces
// ambient timezone state; construct once and pass it where needed.
type Context struct {
	loc *time.Location
}

func NewContext(loc *time.Location) *Context {
	if loc == nil {
		loc = time.UTC
	}
	return &Context{loc: loc}
}

func (c *Context) Location() *time.Location {
	return c.loc
}

// Midnight returns the start of t's calendar day in the context location.
func (c *Context) Midnight(t time.Time) time.Time {
	year, month, day := t.In(c.loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, c.loc)
}

// Days returns n consecutive calendar days starting at today's midnight.
func (c *Context) Days(today time.Time, n int) []time.Time {
	base := c.Midnight(today)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = base.AddDate(0, 0, i)
	}
	return days
}

// DayWindow builds the visible clock-time window for one calendar day from
// minute offsets since midnight.
func (c *Context) DayWindow(day time.Time, startMinutes, endMinutes int) Window {
	base := c.Midnight(day)
	return Window{
		Start: base.Add(time.Duration(startMinutes) * time.Minute),
		End:   base.Add(time.Duration(endMinutes) * time.Minute),
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
