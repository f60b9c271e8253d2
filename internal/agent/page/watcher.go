package page

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("mount point not found")

// Watcher polls a Locator until it finds its target or runs out of attempts.
type Watcher struct {
	interval time.Duration
	attempts int
}

// NewWatcher returns a Watcher. attempts below 1 are treated as 1.
func NewWatcher(interval time.Duration, attempts int) *Watcher {
	if attempts < 1 {
		attempts = 1
	}
	return &Watcher{interval: interval, attempts: attempts}
}

func (w *Watcher) Wait(ctx context.Context, locator Locator) (Control, error) {
	for attempt := 1; ; attempt++ {
		if control, ok := locator.Locate(); ok {
			return control, nil
		}
		if attempt >= w.attempts {
			return nil, fmt.Errorf("after %d attempts: %w", attempt, ErrNotFound)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(w.interval):
		}
	}
}
