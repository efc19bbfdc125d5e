package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// OrderGW defines the interface for order gateway operations: NATS events
// and internal lookups against the fleet and billing services
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tapea/backoffice/services/orders OrderGW
type OrderGW interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	PublishStatusChanged(ctx context.Context, order *models.Order) error
	PublishPaymentConfirmed(ctx context.Context, event *models.PaymentConfirmedEvent) error

	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	GetFeeConfig(ctx context.Context) (*models.FeeConfig, error)
}
