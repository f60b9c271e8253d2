package agent

//go:generate mockgen -source=messenger.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"video_tagger/internal/domain"
)

// Messenger delivers a message to the background process and returns its
// reply. Both the amqp and websocket clients satisfy it.
type Messenger interface {
	Send(ctx context.Context, msg domain.Message) (domain.Reply, error)
}
