package timegrid

import (
	"sort"
	"time"
)

// LayoutDay runs the full per-day pipeline: stable start-time sort, overlap
// grouping, greedy column packing and geometry mapping. The result is ordered
// ascending by start time; callers derive stacking priority from slice
// position, so later-starting segments paint on top.
func LayoutDay(segments []Segment, window Window, minHeightPercent float64) []PositionedSegment {
	if len(segments) == 0 {
		return nil
	}

	ordered := make([]Segment, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	positioned := make([]PositionedSegment, 0, len(ordered))
	for _, group := range groupOverlapping(ordered) {
		columns, count := packColumns(group)
		for i, segment := range group {
			positioned = append(positioned, mapGeometry(segment, columns[i], count, window, minHeightPercent))
		}
	}

	sort.SliceStable(positioned, func(i, j int) bool {
		return positioned[i].Start.Before(positioned[j].Start)
	})
	return positioned
}

// groupOverlapping clusters start-sorted segments into transitive overlap
// groups in a single forward sweep. Because the input is start-sorted, a
// segment overlaps some member of a group exactly when it starts before the
// group's running maximum end, so only that one value is checked per group.
func groupOverlapping(ordered []Segment) [][]Segment {
	var groups [][]Segment
	var maxEnds []time.Time

	for _, segment := range ordered {
		placed := false
		for i := range groups {
			if segment.Start.Before(maxEnds[i]) {
				groups[i] = append(groups[i], segment)
				if segment.End.After(maxEnds[i]) {
					maxEnds[i] = segment.End
				}
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []Segment{segment})
			maxEnds = append(maxEnds, segment.End)
		}
	}
	return groups
}

// packColumns greedily assigns each segment of one overlap group to the first
// column whose last-placed segment already ended. First-fit by column index
// keeps the assignment deterministic for equal inputs.
func packColumns(group []Segment) ([]int, int) {
	assigned := make([]int, len(group))
	var lastEnds []time.Time

	for i, segment := range group {
		placed := false
		for column, end := range lastEnds {
			if !end.After(segment.Start) {
				lastEnds[column] = segment.End
				assigned[i] = column
				placed = true
				break
			}
		}
		if !placed {
			assigned[i] = len(lastEnds)
			lastEnds = append(lastEnds, segment.End)
		}
	}
	return assigned, len(lastEnds)
}

// mapGeometry converts a segment plus its column assignment into percentage
// geometry within the day window. Segments outside the window are clamped to
// its boundary, never dropped; visibility filtering happened at bucketing.
func mapGeometry(segment Segment, column, columns int, window Window, minHeightPercent float64) PositionedSegment {
	totalMinutes := window.End.Sub(window.Start).Minutes()
	offsetMinutes := segment.Start.Sub(window.Start).Minutes()
	durationMinutes := segment.End.Sub(segment.Start).Minutes()
	if durationMinutes < 1 {
		durationMinutes = 1
	}

	top := clamp(offsetMinutes/totalMinutes*100, 0, 100)
	height := durationMinutes / totalMinutes * 100
	if height < minHeightPercent {
		height = minHeightPercent
	}
	// Compress rather than hide a segment that would overflow the window.
	if height > 100-top-0.2 {
		height = 100 - top - 0.2
	}
	if height < minRenderHeightPercent {
		height = minRenderHeightPercent
	}

	width := 100 / float64(columns)
	left := float64(column) * width
	if column > 0 {
		left += columnGapPercent / 2
	}
	switch {
	case columns == 1:
		// Full lane, no gap.
	case column == 0:
		width -= columnGapPercent / 2
	case column == columns-1:
		width -= columnGapPercent / 2
	default:
		width -= columnGapPercent
	}

	return PositionedSegment{
		Segment: segment,
		Column:  column,
		Columns: columns,
		Top:     top,
		Height:  height,
		Left:    left,
		Width:   width,
	}
}
