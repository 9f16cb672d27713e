package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(t *testing.T, startHour, startMin, endHour, endMin int) Segment {
	t.Helper()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, jst)
	return Segment{
		Day:   day,
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func testWindow() Window {
	tc := NewContext(jst)
	return tc.DayWindow(time.Date(2026, 8, 28, 0, 0, 0, 0, jst), 330, 1260)
}

func TestGroupOverlapping(t *testing.T) {
	t.Run("Pairwise Overlap Plus Singleton", func(t *testing.T) {
		// A 09:00-10:00 and B 09:30-10:30 overlap; C 11:00-12:00 stands alone.
		groups := groupOverlapping([]Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 9, 30, 10, 30),
			seg(t, 11, 0, 12, 0),
		})

		require.Len(t, groups, 2)
		assert.Len(t, groups[0], 2)
		assert.Len(t, groups[1], 1)
	})

	t.Run("Transitive Overlap Forms One Group", func(t *testing.T) {
		// A overlaps B, B overlaps C, A and C never touch directly.
		groups := groupOverlapping([]Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 9, 45, 11, 0),
			seg(t, 10, 30, 12, 0),
		})

		require.Len(t, groups, 1)
		assert.Len(t, groups[0], 3)
	})

	t.Run("Touching Endpoints Do Not Overlap", func(t *testing.T) {
		groups := groupOverlapping([]Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 10, 0, 11, 0),
		})

		assert.Len(t, groups, 2)
	})
}

func TestPackColumns(t *testing.T) {
	t.Run("Two Overlapping Segments Take Two Columns", func(t *testing.T) {
		columns, count := packColumns([]Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 9, 30, 10, 30),
		})

		assert.Equal(t, []int{0, 1}, columns)
		assert.Equal(t, 2, count)
	})

	t.Run("Freed Column Is Reused First", func(t *testing.T) {
		// The third segment starts after the first ended, so first-fit puts it
		// back into column 0 instead of opening a third column.
		columns, count := packColumns([]Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 9, 30, 11, 0),
			seg(t, 10, 0, 10, 30),
		})

		assert.Equal(t, []int{0, 1, 0}, columns)
		assert.Equal(t, 2, count)
	})

	t.Run("Fully Overlapping Triple Needs Three Columns", func(t *testing.T) {
		columns, count := packColumns([]Segment{
			seg(t, 10, 0, 12, 0),
			seg(t, 10, 0, 12, 0),
			seg(t, 10, 0, 12, 0),
		})

		assert.Equal(t, []int{0, 1, 2}, columns)
		assert.Equal(t, 3, count)
	})
}

func TestLayoutDay(t *testing.T) {
	window := testWindow()

	t.Run("Overlap Pair And Singleton Scenario", func(t *testing.T) {
		positioned := LayoutDay([]Segment{
			seg(t, 9, 0, 10, 0),   // A
			seg(t, 9, 30, 10, 30), // B
			seg(t, 11, 0, 12, 0),  // C
		}, window, 3)

		require.Len(t, positioned, 3)

		a, b, c := positioned[0], positioned[1], positioned[2]
		assert.Equal(t, 0, a.Column)
		assert.Equal(t, 2, a.Columns)
		assert.Equal(t, 1, b.Column)
		assert.Equal(t, 2, b.Columns)
		assert.Equal(t, 0, c.Column)
		assert.Equal(t, 1, c.Columns)

		// 09:00 is 210 minutes into the 930-minute window.
		assert.InDelta(t, 210.0/930.0*100, a.Top, 0.001)
		assert.InDelta(t, 60.0/930.0*100, a.Height, 0.001)
		assert.InDelta(t, 100.0, c.Width, 0.001, "singleton keeps the full lane")
	})

	t.Run("Three Fully Overlapping Events Split The Lane", func(t *testing.T) {
		positioned := LayoutDay([]Segment{
			seg(t, 10, 0, 12, 0),
			seg(t, 10, 0, 12, 0),
			seg(t, 10, 0, 12, 0),
		}, window, 3)

		require.Len(t, positioned, 3)
		assert.Equal(t, 3, positioned[0].Columns)
		assert.InDelta(t, 100.0/3-columnGapPercent/2, positioned[0].Width, 0.001)
		assert.InDelta(t, 100.0/3-columnGapPercent, positioned[1].Width, 0.001)
		assert.InDelta(t, 100.0/3-columnGapPercent/2, positioned[2].Width, 0.001)
		assert.InDelta(t, 100.0/3+columnGapPercent/2, positioned[1].Left, 0.001)
	})

	t.Run("Same Column Segments Never Overlap In Time", func(t *testing.T) {
		positioned := LayoutDay([]Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 9, 30, 11, 0),
			seg(t, 10, 0, 10, 30),
			seg(t, 10, 45, 12, 0),
			seg(t, 11, 30, 13, 0),
		}, window, 3)

		for i := range positioned {
			for j := i + 1; j < len(positioned); j++ {
				a, b := positioned[i], positioned[j]
				if a.Column != b.Column {
					continue
				}
				disjoint := !a.End.After(b.Start) || !b.End.After(a.Start)
				assert.True(t, disjoint, "segments sharing a column must not overlap")
			}
		}
	})

	t.Run("Geometry Stays Inside The Lane", func(t *testing.T) {
		positioned := LayoutDay([]Segment{
			seg(t, 5, 0, 5, 45),   // starts before the window opens
			seg(t, 20, 50, 21, 40), // runs past the window's end
			seg(t, 12, 0, 12, 1),  // near-zero duration
			seg(t, 22, 0, 23, 0),  // entirely after the window
		}, window, 3)

		require.Len(t, positioned, 4)
		for _, p := range positioned {
			assert.GreaterOrEqual(t, p.Top, 0.0)
			assert.LessOrEqual(t, p.Top, 100.0)
			assert.GreaterOrEqual(t, p.Height, minRenderHeightPercent)
			assert.LessOrEqual(t, p.Top+p.Height, 100+minRenderHeightPercent)
		}
	})

	t.Run("Tiny Event Gets The Minimum Height", func(t *testing.T) {
		positioned := LayoutDay([]Segment{seg(t, 12, 0, 12, 5)}, window, 3)

		require.Len(t, positioned, 1)
		assert.InDelta(t, 3.0, positioned[0].Height, 0.001)
	})

	t.Run("Output Is Ordered By Start Time", func(t *testing.T) {
		positioned := LayoutDay([]Segment{
			seg(t, 15, 0, 16, 0),
			seg(t, 9, 0, 10, 0),
			seg(t, 12, 0, 13, 0),
		}, window, 3)

		require.Len(t, positioned, 3)
		for i := 1; i < len(positioned); i++ {
			assert.False(t, positioned[i].Start.Before(positioned[i-1].Start))
		}
	})

	t.Run("Idempotent For Identical Input", func(t *testing.T) {
		input := []Segment{
			seg(t, 9, 0, 10, 0),
			seg(t, 9, 30, 10, 30),
			seg(t, 9, 45, 11, 15),
			seg(t, 13, 0, 14, 0),
		}

		first := LayoutDay(input, window, 3)
		second := LayoutDay(input, window, 3)

		assert.Equal(t, first, second)
	})

	t.Run("Empty Input Is A Valid Common Case", func(t *testing.T) {
		assert.Empty(t, LayoutDay(nil, window, 3))
		assert.Empty(t, LayoutDay([]Segment{}, window, 3))
	})
}
