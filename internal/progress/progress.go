package progress

import (
	"math"

	"video_tagger/internal/domain"
)

// WatchedSeconds sums the durations of every segment before currentIndex and
// adds the position inside the current segment. A nil segment list counts as
// missing data and yields 0.
func WatchedSeconds(segments []domain.Segment, currentIndex int, position float64) float64 {
	if segments == nil {
		return 0
	}

	var previous int
	for _, seg := range segments {
		if seg.Index < currentIndex {
			previous += seg.Duration
		}
	}

	return float64(previous) + position
}

// Percentage returns round(100*watched/total), or 0 when total is not
// positive. Values above 100 are returned as-is.
func Percentage(watched float64, total int) int {
	if total <= 0 {
		return 0
	}
	// Halves round towards +Inf, matching what the agents display.
	return int(math.Floor(100*watched/float64(total) + 0.5))
}
