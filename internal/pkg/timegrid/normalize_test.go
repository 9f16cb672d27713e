package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func TestNormalize(t *testing.T) {
	tc := NewContext(jst)

	t.Run("Plain Single-Day Event", func(t *testing.T) {
		segments := tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "09:00", End: "10:30"})

		require.Len(t, segments, 1)
		assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, jst), segments[0].Day)
		assert.Equal(t, time.Date(2026, 8, 28, 9, 0, 0, 0, jst), segments[0].Start)
		assert.Equal(t, time.Date(2026, 8, 28, 10, 30, 0, 0, jst), segments[0].End)
	})

	t.Run("Cross-Midnight Event Splits In Two", func(t *testing.T) {
		segments := tc.Normalize(3, RawEvent{Day: "2026/08/28", Start: "23:00", End: "01:30"})

		require.Len(t, segments, 2)
		assert.Equal(t, time.Date(2026, 8, 28, 23, 0, 0, 0, jst), segments[0].Start)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, jst), segments[0].End)
		assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, jst), segments[0].Day)

		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, jst), segments[1].Start)
		assert.Equal(t, time.Date(2026, 8, 29, 1, 30, 0, 0, jst), segments[1].End)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, jst), segments[1].Day)
		assert.Equal(t, 3, segments[1].Index, "both segments keep the source event index")
	})

	t.Run("Event Ending Exactly At Midnight Stays Single", func(t *testing.T) {
		segments := tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "22:00", End: "00:00"})

		require.Len(t, segments, 1)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, jst), segments[0].End)
	})

	t.Run("Equal Start And End Becomes 24 Hours", func(t *testing.T) {
		segments := tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "10:00", End: "10:00"})

		require.Len(t, segments, 2)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, jst), segments[0].End)
		assert.Equal(t, time.Date(2026, 8, 29, 10, 0, 0, 0, jst), segments[1].End)
	})

	t.Run("Missing Start Time Yields No Segments", func(t *testing.T) {
		assert.Empty(t, tc.Normalize(0, RawEvent{Day: "2026/08/28", End: "10:00"}))
	})

	t.Run("Missing Day Yields No Segments", func(t *testing.T) {
		assert.Empty(t, tc.Normalize(0, RawEvent{Start: "09:00", End: "10:00"}))
	})

	t.Run("Unparseable Time Yields No Segments", func(t *testing.T) {
		assert.Empty(t, tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "morning", End: "10:00"}))
		assert.Empty(t, tc.Normalize(0, RawEvent{Day: "next friday", Start: "09:00", End: "10:00"}))
	})

	t.Run("End Before Start Rolls To Next Midnight", func(t *testing.T) {
		// 00:30 -> 00:00 gains 24 hours and lands exactly on the next
		// midnight, so the event stays a single 23.5 hour segment.
		segments := tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "00:30", End: "00:00"})

		require.Len(t, segments, 1)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, jst), segments[0].End)
	})
}

func TestBucketByDay(t *testing.T) {
	tc := NewContext(jst)
	days := tc.Days(time.Date(2026, 8, 28, 14, 12, 0, 0, jst), 3)

	t.Run("Segments Land On Matching Days", func(t *testing.T) {
		var segments []Segment
		segments = append(segments, tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "09:00", End: "10:00"})...)
		segments = append(segments, tc.Normalize(1, RawEvent{Day: "2026/08/29", Start: "09:00", End: "10:00"})...)
		segments = append(segments, tc.Normalize(2, RawEvent{Day: "2026/08/30", Start: "09:00", End: "10:00"})...)

		buckets := tc.BucketByDay(segments, days)

		require.Len(t, buckets, 3)
		assert.Len(t, buckets[0], 1)
		assert.Len(t, buckets[1], 1)
		assert.Len(t, buckets[2], 1)
		assert.Equal(t, 1, buckets[1][0].Index)
	})

	t.Run("Out Of Window Segments Are Dropped", func(t *testing.T) {
		past := tc.Normalize(0, RawEvent{Day: "2026/08/27", Start: "09:00", End: "10:00"})
		future := tc.Normalize(1, RawEvent{Day: "2026/09/05", Start: "09:00", End: "10:00"})

		buckets := tc.BucketByDay(append(past, future...), days)

		assert.Empty(t, buckets[0])
		assert.Empty(t, buckets[1])
		assert.Empty(t, buckets[2])
	})

	t.Run("Cross-Midnight Tail Falls Into Next Bucket", func(t *testing.T) {
		segments := tc.Normalize(0, RawEvent{Day: "2026/08/28", Start: "23:00", End: "01:30"})

		buckets := tc.BucketByDay(segments, days)

		assert.Len(t, buckets[0], 1)
		assert.Len(t, buckets[1], 1)
	})
}

func TestDaysAndWindow(t *testing.T) {
	tc := NewContext(jst)

	t.Run("Days Start At Local Midnight", func(t *testing.T) {
		days := tc.Days(time.Date(2026, 8, 28, 23, 59, 0, 0, jst), 3)

		require.Len(t, days, 3)
		assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, jst), days[0])
		assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, jst), days[2])
	})

	t.Run("DayWindow Applies Minute Offsets", func(t *testing.T) {
		window := tc.DayWindow(time.Date(2026, 8, 28, 0, 0, 0, 0, jst), 330, 1260)

		assert.Equal(t, time.Date(2026, 8, 28, 5, 30, 0, 0, jst), window.Start)
		assert.Equal(t, time.Date(2026, 8, 28, 21, 0, 0, 0, jst), window.End)
		assert.InDelta(t, 930, window.End.Sub(window.Start).Minutes(), 0.001)
	})
}
