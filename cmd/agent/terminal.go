package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"video_tagger/internal/agent/page"
)

// terminal stands in for a browser tab: the location and playback position
// are set by commands, the tag menu and notifications are printed.
type terminal struct {
	out io.Writer

	mu       sync.Mutex
	href     string
	playback page.Playback
	menus    map[string]func(string)
	ready    chan struct{}
}

func newTerminal(out io.Writer, href string, duration float64) *terminal {
	ready := make(chan struct{})
	close(ready)
	return &terminal{
		out:      out,
		href:     href,
		playback: page.Playback{Duration: duration},
		menus:    make(map[string]func(string)),
		ready:    ready,
	}
}

func (t *terminal) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.href
}

func (t *terminal) Ready() <-chan struct{} { return t.ready }

func (t *terminal) Playback() page.Playback {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playback
}

func (t *terminal) Locate() (page.Control, bool) { return t, true }

func (t *terminal) Mounted(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.menus[id]
	return ok
}

func (t *terminal) Mount(id string, labels []string, onSelect func(string)) error {
	t.mu.Lock()
	t.menus[id] = onSelect
	t.mu.Unlock()

	_, err := fmt.Fprintf(t.out, "tag menu: %s\n", strings.Join(labels, " | "))
	return err
}

func (t *terminal) Notify(text string) {
	fmt.Fprintf(t.out, "> %s\n", text)
}

func (t *terminal) navigate(href string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.href = href
	t.playback.CurrentTime = 0
}

func (t *terminal) seek(position float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playback.CurrentTime = position
}

func (t *terminal) click(id, label string) bool {
	t.mu.Lock()
	onSelect, ok := t.menus[id]
	t.mu.Unlock()
	if !ok || onSelect == nil {
		return false
	}
	onSelect(label)
	return true
}

// readCommands applies stdin commands until r is exhausted or ctx is done:
//
//	nav <url>       change location
//	seek <seconds>  move the playback position
//	tag <label>     click a tag menu item
func (t *terminal) readCommands(ctx context.Context, r io.Reader, changes chan<- struct{}) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "nav":
			t.navigate(arg)
			select {
			case changes <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
		case "seek":
			position, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				fmt.Fprintf(t.out, "bad position %q\n", arg)
				continue
			}
			t.seek(position)
		case "tag":
			if !t.click(page.MenuID, arg) {
				fmt.Fprintln(t.out, "tag menu not mounted")
			}
		default:
			fmt.Fprintf(t.out, "unknown command %q\n", cmd)
		}
	}
	return scanner.Err()
}
