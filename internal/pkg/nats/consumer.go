package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/tapea/backoffice/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject, optionally as
// part of a queue group so multiple instances share the load.
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject on an existing client
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, wrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	return &Consumer{client: client, subscription: subscription}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
