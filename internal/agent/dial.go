package agent

import (
	"context"
	"fmt"
	"log/slog"

	"video_tagger/internal/config"
	"video_tagger/internal/transport/amqprpc"
	"video_tagger/internal/transport/httpapi"
)

// Conn is a Messenger holding a connection to the background process.
type Conn interface {
	Messenger
	Close() error
}

// Dial connects over the transport named in cfg.Agent.
func Dial(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Conn, error) {
	switch cfg.Agent.Transport {
	case "amqp":
		client, err := amqprpc.Dial(amqprpc.Config{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		return client, nil

	case "ws":
		client, err := httpapi.DialWS(ctx, cfg.Agent.WSURL, logger)
		if err != nil {
			return nil, fmt.Errorf("dial websocket: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unknown agent transport %q", cfg.Agent.Transport)
	}
}
