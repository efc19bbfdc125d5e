package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/retry"
)

// Producer publishes JSON messages to NATS subjects with retry on
// transient connection failures.
type Producer struct {
	client  *Client
	retrier *retry.Retrier
}

// NewProducer creates a new producer on an existing client
func NewProducer(client *Client, zl *logger.ZapLogger) *Producer {
	return &Producer{
		client:  client,
		retrier: retry.NewWithDefaults(zl),
	}
}

// Publish marshals the message as JSON and publishes it to the subject
func (p *Producer) Publish(ctx context.Context, subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.client.Publish(subject, msgBytes)
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	logger.Debug("Published message", logger.String("subject", subject))
	return nil
}
