package amqprpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"video_tagger/internal/domain"
)

// directReplyTo is RabbitMQ's pseudo-queue for RPC replies; no reply queue
// has to be declared.
const directReplyTo = "amq.rabbitmq.reply-to"

var ErrClosed = errors.New("amqp client closed")

// Client sends messages to the background process and waits for the
// matching reply.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger

	publishMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan domain.Reply
	closed  bool
}

func Dial(cfg Config, logger *slog.Logger) (*Client, error) {
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

	// Direct reply-to requires consuming in no-ack mode before publishing.
	replies, err := ch.Consume(
		directReplyTo,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("consume replies: %w", err)
	}

	c := &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.QueueName,
		logger:  logger.With("component", "amqp_client"),
		pending: make(map[string]chan domain.Reply),
	}
	go c.readReplies(replies)

	return c, nil
}

// Send publishes msg and blocks until its reply arrives or ctx is done.
func (c *Client) Send(ctx context.Context, msg domain.Message) (domain.Reply, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("marshal message: %w", err)
	}

	id := uuid.NewString()
	wait := make(chan domain.Reply, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.Reply{}, ErrClosed
	}
	c.pending[id] = wait
	c.mu.Unlock()

	c.publishMu.Lock()
	err = c.channel.PublishWithContext(
		ctx,
		"",
		c.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: id,
			ReplyTo:       directReplyTo,
			Body:          body,
		},
	)
	c.publishMu.Unlock()
	if err != nil {
		c.forget(id)
		return domain.Reply{}, fmt.Errorf("publish message: %w", err)
	}

	select {
	case <-ctx.Done():
		c.forget(id)
		return domain.Reply{}, ctx.Err()
	case reply, ok := <-wait:
		if !ok {
			return domain.Reply{}, ErrClosed
		}
		return reply, nil
	}
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Client) readReplies(replies <-chan amqp.Delivery) {
	for d := range replies {
		c.mu.Lock()
		wait, ok := c.pending[d.CorrelationId]
		delete(c.pending, d.CorrelationId)
		c.mu.Unlock()

		if !ok {
			c.logger.Warn("reply for unknown request", "correlation_id", d.CorrelationId)
			continue
		}

		var reply domain.Reply
		if err := json.Unmarshal(d.Body, &reply); err != nil {
			reply = domain.ErrorReply(&domain.ParseError{Op: "decode reply", Err: err})
		}
		wait <- reply
	}

	c.mu.Lock()
	c.closed = true
	for id, wait := range c.pending {
		close(wait)
		delete(c.pending, id)
	}
	c.mu.Unlock()
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
