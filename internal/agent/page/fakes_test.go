package page

import (
	"sync"
)

type fakePage struct {
	mu       sync.Mutex
	href     string
	playback Playback
	ready    chan struct{}
}

func newFakePage(href string, playback Playback) *fakePage {
	ready := make(chan struct{})
	close(ready)
	return &fakePage{href: href, playback: playback, ready: ready}
}

func (p *fakePage) Location() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.href
}

func (p *fakePage) Ready() <-chan struct{} { return p.ready }

func (p *fakePage) Playback() Playback {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playback
}

func (p *fakePage) navigate(href string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.href = href
}

type fakeControl struct {
	mu       sync.Mutex
	mounted  map[string][]string
	onSelect func(string)
}

func newFakeControl() *fakeControl {
	return &fakeControl{mounted: make(map[string][]string)}
}

func (c *fakeControl) Mounted(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.mounted[id]
	return ok
}

func (c *fakeControl) Mount(id string, labels []string, onSelect func(string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted[id] = labels
	c.onSelect = onSelect
	return nil
}

func (c *fakeControl) labels(id string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted[id]
}

func (c *fakeControl) click(label string) {
	c.mu.Lock()
	onSelect := c.onSelect
	c.mu.Unlock()
	onSelect(label)
}

// fakeLocator finds control on call number after (1-based); 0 means never.
type fakeLocator struct {
	mu      sync.Mutex
	control Control
	after   int
	calls   int
}

func (l *fakeLocator) Locate() (Control, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.after > 0 && l.calls >= l.after {
		return l.control, true
	}
	return nil, false
}

func (l *fakeLocator) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

type fakeNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *fakeNotifier) Notify(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
}

func (n *fakeNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.texts...)
}
