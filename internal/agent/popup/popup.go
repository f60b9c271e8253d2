// Package popup is the toolbar popup: it manages the saved credential and
// tags the video open in the active tab.
package popup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"video_tagger/internal/agent"
	"video_tagger/internal/domain"
)

const (
	StatusReady      = "ready"
	StatusNotVideo   = "not a video page"
	StatusTokenSaved = "token saved"
	StatusSyncing    = "syncing"
	StatusSyncFailed = "sync failed"
)

// CloseDelay is how long a successful tag stays on screen.
const CloseDelay = time.Second

var ErrDisabled = errors.New("tagging disabled: not a video page")

type Credentials interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

type Popup struct {
	credentials Credentials
	messenger   agent.Messenger
	tabURL      string
	logger      *slog.Logger
	now         func() time.Time

	token   string
	status  string
	enabled bool
}

func New(credentials Credentials, messenger agent.Messenger, tabURL string, logger *slog.Logger) *Popup {
	return &Popup{
		credentials: credentials,
		messenger:   messenger,
		tabURL:      tabURL,
		logger:      logger.With("component", "popup"),
		now:         time.Now,
	}
}

// Open loads the saved credential and decides whether tagging is available
// for the active tab.
func (p *Popup) Open(ctx context.Context) error {
	token, err := p.credentials.Get(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	p.token = token

	if !agent.IsVideoTab(p.tabURL) {
		p.status = StatusNotVideo
		p.enabled = false
		return nil
	}

	p.status = StatusReady
	p.enabled = true
	return nil
}

func (p *Popup) Token() string { return p.token }

func (p *Popup) Status() string { return p.status }

func (p *Popup) Enabled() bool { return p.enabled }

// SaveToken trims and stores token, replacing any previous one. An empty
// token is stored as is and clears the credential.
func (p *Popup) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if err := p.credentials.Save(ctx, token); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	p.token = token
	p.status = StatusTokenSaved
	return nil
}

// Tag tags the video in the active tab. On success it returns how long to
// wait before closing the popup.
func (p *Popup) Tag(ctx context.Context, tag string) (time.Duration, error) {
	if !p.enabled {
		return 0, ErrDisabled
	}

	loc, ok := agent.ParseLocation(p.tabURL)
	if !ok {
		return 0, ErrDisabled
	}

	p.status = StatusSyncing
	reply, err := p.messenger.Send(ctx, domain.Message{
		Type: domain.MessageSyncTag,
		Data: &domain.SyncRequest{
			Bvid:      loc.Bvid,
			Tag:       tag,
			Part:      domain.ParsePart(loc.Part),
			Timestamp: p.now().UnixMilli(),
		},
	})
	if err == nil && !reply.Success {
		err = errors.New(reply.Error)
	}
	if err != nil {
		p.status = StatusSyncFailed
		p.logger.Error("tagging failed", "bvid", loc.Bvid, "tag", tag, "error", err)
		return 0, fmt.Errorf("tag %s: %w", loc.Bvid, err)
	}

	p.status = "tagged: " + tag
	return CloseDelay, nil
}
