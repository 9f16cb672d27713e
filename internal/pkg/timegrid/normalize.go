package timegrid

import "time"

// Normalize converts one raw event into day-confined segments.
//
// An end time at or before the start time means the event runs past midnight,
// so the end gains 24 hours. A span that still reaches beyond the end of the
// starting day is split in two: the remainder is re-anchored to the next
// calendar day and clipped to at most that full day, which caps any event at
// 48 hours measured from its day's midnight. Excess duration is dropped
// silently; that mirrors the behavior bookings have always had.
//
// A raw event with a missing or unparseable field yields no segments and no
// error. Malformed input is filtered, never fatal.
func (c *Context) Normalize(index int, raw RawEvent) []Segment {
	if raw.Day == "" || raw.Start == "" || raw.End == "" {
		return nil
	}

	day, err := time.ParseInLocation(dayFormat, raw.Day, c.loc)
	if err != nil {
		return nil
	}
	start, err := time.ParseInLocation(dayTimeFormat, raw.Day+" "+raw.Start, c.loc)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation(dayTimeFormat, raw.Day+" "+raw.End, c.loc)
	if err != nil {
		return nil
	}

	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	dayEnd := day.Add(24 * time.Hour)
	if !end.After(dayEnd) {
		return []Segment{{Day: day, Start: start, End: end, Index: index}}
	}

	next := dayEnd
	nextEnd := end
	if end.Sub(next) > 24*time.Hour {
		nextEnd = next.Add(24 * time.Hour)
	}
	return []Segment{
		{Day: day, Start: start, End: dayEnd, Index: index},
		{Day: next, Start: next, End: nextEnd, Index: index},
	}
}

// BucketByDay assigns segments to the visible window's day columns by calendar
// date. Segments matching no visible day are dropped, not reported.
func (c *Context) BucketByDay(segments []Segment, days []time.Time) [][]Segment {
	buckets := make([][]Segment, len(days))
	for _, segment := range segments {
		for i, day := range days {
			if sameDate(segment.Day.In(c.loc), day.In(c.loc)) {
				buckets[i] = append(buckets[i], segment)
				break
			}
		}
	}
	return buckets
}
