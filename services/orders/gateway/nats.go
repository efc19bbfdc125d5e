package gateway

import (
	"context"

	"github.com/tapea/backoffice/internal/pkg/constants"
	"github.com/tapea/backoffice/internal/pkg/models"
)

// PublishOrderCreated publishes a new order to interested services
func (g *OrderGW) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	return g.producer.Publish(ctx, constants.SubjectOrderCreated, order)
}

// PublishStatusChanged publishes an order status change
func (g *OrderGW) PublishStatusChanged(ctx context.Context, order *models.Order) error {
	subject := constants.SubjectOrderStatusChanged
	if order.Status == models.OrderStatusCancelled {
		subject = constants.SubjectOrderCancelled
	}
	return g.producer.Publish(ctx, subject, order)
}

// PublishPaymentConfirmed publishes a payment confirmation event. Billing
// consumes it to keep the current collecte period fresh.
func (g *OrderGW) PublishPaymentConfirmed(ctx context.Context, event *models.PaymentConfirmedEvent) error {
	return g.producer.Publish(ctx, constants.SubjectOrderPaymentConfirmed, event)
}
