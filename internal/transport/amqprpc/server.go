package amqprpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"video_tagger/internal/domain"
	"video_tagger/internal/messaging"
)

const DefaultQueue = "video_tagger.messages"

// replyTimeout bounds a reply publish, which still goes out after Serve's
// context is cancelled.
const replyTimeout = 5 * time.Second

type replyPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Config struct {
	URL       string
	QueueName string
	Prefetch  int
}

// Server consumes agent messages from a queue and publishes each reply to
// the queue named in the request's ReplyTo.
type Server struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	replies replyPublisher
	queue   string
	handler messaging.Handler
	logger  *slog.Logger

	publishMu sync.Mutex
	inflight  sync.WaitGroup
}

func NewServer(cfg Config, handler messaging.Handler, logger *slog.Logger) (*Server, error) {
	if cfg.QueueName == "" {
		cfg.QueueName = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if cfg.Prefetch > 0 {
		if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("set qos: %w", err)
		}
	}

	_, err = ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"queue", cfg.QueueName,
		"prefetch", cfg.Prefetch,
	)

	return &Server{
		conn:    conn,
		channel: ch,
		replies: ch,
		queue:   cfg.QueueName,
		handler: handler,
		logger:  logger.With("component", "amqp_server"),
	}, nil
}

// Serve handles deliveries until ctx is cancelled or the channel closes.
// Each delivery runs in its own goroutine.
func (s *Server) Serve(ctx context.Context) error {
	deliveries, err := s.channel.Consume(
		s.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	s.logger.Info("serving messages", "queue", s.queue)
	defer s.inflight.Wait()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("amqp server stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			s.inflight.Add(1)
			go func() {
				defer s.inflight.Done()
				s.handle(ctx, d)
			}()
		}
	}
}

func (s *Server) handle(ctx context.Context, d amqp.Delivery) {
	var reply domain.Reply

	var msg domain.Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		reply = domain.ErrorReply(&domain.ParseError{Op: "decode message", Err: err})
	} else {
		reply = s.handler.Handle(ctx, msg)
	}

	if d.ReplyTo != "" {
		if err := s.publishReply(ctx, d, reply); err != nil {
			s.logger.Error("failed to publish reply",
				"correlation_id", d.CorrelationId,
				"error", err,
			)
		}
	}

	if err := d.Ack(false); err != nil {
		s.logger.Warn("ack failed", "error", err)
	}
}

func (s *Server) publishReply(ctx context.Context, d amqp.Delivery, reply domain.Reply) error {
	body, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}

	// A request that was handled gets its reply even during shutdown.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), replyTimeout)
	defer cancel()

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	err = s.replies.PublishWithContext(
		ctx,
		"",
		d.ReplyTo,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: d.CorrelationId,
			Body:          body,
			Timestamp:     time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish reply: %w", err)
	}

	s.logger.Debug("replied",
		"correlation_id", d.CorrelationId,
		"success", reply.Success,
	)

	return nil
}

func (s *Server) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
