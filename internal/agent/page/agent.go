package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"video_tagger/internal/agent"
	"video_tagger/internal/domain"
)

// MenuID identifies the mounted tag menu so it is never mounted twice.
const MenuID = "video-tagger-menu"

type Config struct {
	MountInterval  time.Duration
	MountAttempts  int
	RequestTimeout time.Duration
}

type Agent struct {
	page      Page
	locator   Locator
	messenger agent.Messenger
	notifier  Notifier
	watcher   *Watcher
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time

	current     string
	cancelMount context.CancelFunc
	mounts      sync.WaitGroup
}

func New(page Page, locator Locator, messenger agent.Messenger, notifier Notifier, cfg Config, logger *slog.Logger) *Agent {
	return &Agent{
		page:      page,
		locator:   locator,
		messenger: messenger,
		notifier:  notifier,
		watcher:   NewWatcher(cfg.MountInterval, cfg.MountAttempts),
		timeout:   cfg.RequestTimeout,
		logger:    logger.With("component", "page_agent"),
		now:       time.Now,
	}
}

// Run waits for the page to load and initializes the agent, then
// re-initializes every time a signal on changes finds a new location. It
// returns when ctx is done or changes is closed.
func (a *Agent) Run(ctx context.Context, changes <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.page.Ready():
	}
	defer a.stopMount()

	a.current = a.page.Location()
	a.init(ctx, a.current)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			href := a.page.Location()
			if href == a.current {
				continue
			}
			a.current = href
			a.logger.Info("location changed, re-initializing", "url", href)
			a.init(ctx, href)
		}
	}
}

// Sync pushes the current playback position. It is a no-op off video pages.
func (a *Agent) Sync(ctx context.Context) error {
	loc, ok := a.videoLocation(a.page.Location())
	if !ok {
		return nil
	}
	_, err := a.syncProgress(ctx, loc, a.page.Playback())
	return err
}

func (a *Agent) videoLocation(href string) (agent.Location, bool) {
	if !agent.IsVideoPage(href) {
		return agent.Location{}, false
	}
	return agent.ParseLocation(href)
}

func (a *Agent) init(ctx context.Context, href string) {
	loc, ok := a.videoLocation(href)
	if !ok {
		a.logger.Debug("not a video page", "url", href)
		return
	}

	a.loadProgress(ctx, loc)

	playback := a.page.Playback()
	if total, err := a.syncProgress(ctx, loc, playback); err != nil {
		a.logger.Warn("progress sync on open failed", "bvid", loc.Bvid, "error", err)
	} else {
		a.notifier.Notify(fmt.Sprintf("progress synced, current progress %d%%", total))
	}

	a.startMount(ctx, loc)
}

func (a *Agent) loadProgress(ctx context.Context, loc agent.Location) {
	reply, err := a.send(ctx, domain.Message{Type: domain.MessageGetProgress, Bvid: loc.Bvid})
	if err != nil {
		a.logger.Warn("get progress failed", "bvid", loc.Bvid, "error", err)
		return
	}
	if len(reply.Data) > 0 {
		a.logger.Info("remote progress found", "bvid", loc.Bvid, "data", string(reply.Data))
	}
}

// syncProgress sends SYNC_PROGRESS and returns the total progress to show.
func (a *Agent) syncProgress(ctx context.Context, loc agent.Location, playback Playback) (int, error) {
	reply, err := a.send(ctx, domain.Message{
		Type: domain.MessageSyncProgress,
		Data: &domain.SyncRequest{
			Bvid:        loc.Bvid,
			Part:        domain.ParsePart(loc.Part),
			CurrentTime: math.Floor(playback.CurrentTime),
			Timestamp:   a.now().UnixMilli(),
		},
	})
	if err != nil {
		return 0, err
	}
	return a.totalProgress(reply, playback)
}

// Tag sends SYNC_TAG for the video on the current page.
func (a *Agent) Tag(ctx context.Context, tag string) error {
	loc, ok := agent.ParseLocation(a.page.Location())
	if !ok {
		return errors.New("no video on this page")
	}

	playback := a.page.Playback()
	a.logger.Info("tagging video", "bvid", loc.Bvid, "part", loc.Part, "tag", tag, "position", math.Floor(playback.CurrentTime))

	reply, err := a.send(ctx, domain.Message{
		Type: domain.MessageSyncTag,
		Data: &domain.SyncRequest{
			Bvid:        loc.Bvid,
			Tag:         tag,
			Part:        domain.ParsePart(loc.Part),
			CurrentTime: math.Floor(playback.CurrentTime),
			Timestamp:   a.now().UnixMilli(),
		},
	})
	if err != nil {
		return fmt.Errorf("tag %s: %w", loc.Bvid, err)
	}

	total, err := a.totalProgress(reply, playback)
	if err != nil {
		return fmt.Errorf("tag %s: %w", loc.Bvid, err)
	}

	a.notifier.Notify(fmt.Sprintf("tagged: %s (%d%%)", tag, total))
	return nil
}

func (a *Agent) send(ctx context.Context, msg domain.Message) (domain.Reply, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	return a.messenger.Send(ctx, msg)
}

func (a *Agent) totalProgress(reply domain.Reply, playback Playback) (int, error) {
	if !reply.Success {
		return 0, errors.New(reply.Error)
	}
	result, err := reply.Result()
	if err != nil {
		return 0, err
	}
	if total, ok := result.TotalProgress(); ok {
		return total, nil
	}
	return playback.Percentage(), nil
}

// startMount looks for the menu in the background so a slow page does not
// hold up navigation handling. A pending search for a previous page is
// cancelled first.
func (a *Agent) startMount(ctx context.Context, loc agent.Location) {
	a.stopMount()

	mountCtx, cancel := context.WithCancel(ctx)
	a.cancelMount = cancel

	a.mounts.Add(1)
	go func() {
		defer a.mounts.Done()
		if err := a.mount(mountCtx, ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn("tag menu not mounted", "bvid", loc.Bvid, "error", err)
		}
	}()
}

func (a *Agent) stopMount() {
	if a.cancelMount != nil {
		a.cancelMount()
		a.cancelMount = nil
	}
	a.mounts.Wait()
}

// mount searches on ctx; clicks run on base since they outlive the search.
func (a *Agent) mount(ctx, base context.Context) error {
	control, err := a.watcher.Wait(ctx, a.locator)
	if err != nil {
		return err
	}
	if control.Mounted(MenuID) {
		return nil
	}

	return control.Mount(MenuID, agent.TagLabels, func(label string) {
		if err := a.Tag(base, label); err != nil {
			a.logger.Error("tagging failed", "tag", label, "error", err)
		}
	})
}
