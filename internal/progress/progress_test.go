package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"video_tagger/internal/domain"
)

func TestWatchedSeconds(t *testing.T) {
	twoParts := []domain.Segment{
		{Index: 1, Duration: 600},
		{Index: 2, Duration: 600},
	}

	tests := []struct {
		name     string
		segments []domain.Segment
		index    int
		position float64
		expected float64
	}{
		{"second part", twoParts, 2, 100, 700},
		{"first part", twoParts, 1, 42, 42},
		{"index below first", twoParts, 0, 15, 15},
		{"past the last part", twoParts, 5, 10, 1210},
		{"empty list", []domain.Segment{}, 3, 30, 30},
		{"missing list", nil, 3, 30, 0},
		{"unordered list", []domain.Segment{{Index: 3, Duration: 5}, {Index: 1, Duration: 7}, {Index: 2, Duration: 11}}, 3, 1, 19},
		{"segment without duration", []domain.Segment{{Index: 1}, {Index: 2, Duration: 20}}, 3, 0, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WatchedSeconds(tc.segments, tc.index, tc.position))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		watched  float64
		total    int
		expected int
	}{
		{"half", 600, 1200, 50},
		{"rounds down", 700, 1200, 58},
		{"rounds half up", 1, 200, 1},
		{"zero total", 600, 0, 0},
		{"negative total", 600, -10, 0},
		{"over 100 is kept", 1500, 1000, 150},
		{"nothing watched", 0, 1000, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Percentage(tc.watched, tc.total))
		})
	}
}
