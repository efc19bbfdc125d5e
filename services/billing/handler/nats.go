package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tapea/backoffice/internal/pkg/constants"
	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	natspkg "github.com/tapea/backoffice/internal/pkg/nats"
	"github.com/tapea/backoffice/services/billing"
)

// NatsHandler consumes order events for the billing service
type NatsHandler struct {
	billingUC  billing.BillingUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNatsHandler creates a new billing NATS handler
func NewNatsHandler(billingUC billing.BillingUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		billingUC:  billingUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the subjects the billing service reacts to.
// The queue group makes multiple instances share the stream.
func (h *NatsHandler) InitConsumers() error {
	consumer, err := natspkg.NewConsumer(
		h.natsClient,
		constants.SubjectOrderPaymentConfirmed,
		constants.QueueGroupBilling,
		h.handlePaymentConfirmed,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to payment confirmations: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop unsubscribes all consumers
func (h *NatsHandler) Stop() {
	for _, c := range h.consumers {
		if err := c.Stop(); err != nil {
			logger.Warn("Failed to stop consumer", logger.Err(err))
		}
	}
}

func (h *NatsHandler) handlePaymentConfirmed(data []byte) error {
	var event models.PaymentConfirmedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment confirmed event: %w", err)
	}

	logger.Info("Payment confirmation received",
		logger.String("order_id", event.OrderID.String()),
		logger.Int("total_price", event.TotalPrice))

	return h.billingUC.HandlePaymentConfirmed(context.Background(), &event)
}
