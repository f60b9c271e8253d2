package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"video_tagger/internal/domain"
)

// Syncer is the background-side work a message can trigger.
type Syncer interface {
	SyncTag(ctx context.Context, req domain.SyncRequest) (domain.SyncResult, error)
	SyncProgress(ctx context.Context, req domain.SyncRequest) (domain.SyncResult, error)
	GetProgress(ctx context.Context, bvid string) domain.ProgressMarker
}

// Handler answers one message with exactly one reply.
type Handler interface {
	Handle(ctx context.Context, msg domain.Message) domain.Reply
}

var errMissingData = errors.New("message has no data")

// Dispatcher routes messages by type to a Syncer. Errors never escape: they
// are turned into a failed reply.
type Dispatcher struct {
	syncer Syncer
	logger *slog.Logger
}

func NewDispatcher(syncer Syncer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		syncer: syncer,
		logger: logger.With("component", "dispatcher"),
	}
}

func (d *Dispatcher) Handle(ctx context.Context, msg domain.Message) domain.Reply {
	d.logger.Debug("received message", "type", msg.Type)

	var (
		data any
		err  error
	)

	switch msg.Type {
	case domain.MessageSyncTag:
		if msg.Data == nil {
			return domain.ErrorReply(errMissingData)
		}
		data, err = d.syncer.SyncTag(ctx, *msg.Data)
	case domain.MessageSyncProgress:
		if msg.Data == nil {
			return domain.ErrorReply(errMissingData)
		}
		data, err = d.syncer.SyncProgress(ctx, *msg.Data)
	case domain.MessageGetProgress:
		data = d.syncer.GetProgress(ctx, msg.Bvid)
	default:
		err = fmt.Errorf("unknown message type: %q", msg.Type)
	}

	if err != nil {
		d.logger.Warn("message failed", "type", msg.Type, "error", err)
		return domain.ErrorReply(err)
	}

	reply, err := domain.SuccessReply(data)
	if err != nil {
		return domain.ErrorReply(fmt.Errorf("encode reply: %w", err))
	}
	return reply
}
