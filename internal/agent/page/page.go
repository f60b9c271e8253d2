// Package page is the agent that runs alongside an open video page: it syncs
// watch progress when a video is opened and mounts the tagging menu.
package page

import "math"

// Playback is the player state at the time it is read.
type Playback struct {
	CurrentTime float64
	Duration    float64
}

// Percentage is the local watch percentage, used when the background reply
// carries no total progress.
func (p Playback) Percentage() int {
	if p.Duration <= 0 {
		return 0
	}
	return int(math.Floor(p.CurrentTime/p.Duration*100 + 0.5))
}

// Page is the browser tab the agent is attached to.
type Page interface {
	Location() string
	// Ready is closed once the page has finished loading.
	Ready() <-chan struct{}
	Playback() Playback
}

// Control is a menu the tag items can be mounted into.
type Control interface {
	Mounted(id string) bool
	Mount(id string, labels []string, onSelect func(label string)) error
}

// Locator finds the mount point on the current page, if it exists yet.
type Locator interface {
	Locate() (Control, bool)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(text string)
}
