package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// OrderRepo defines the interface for order data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tapea/backoffice/services/orders OrderRepo
type OrderRepo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, order *models.Order, from models.OrderStatus) error
	CompleteOrder(ctx context.Context, order *models.Order, extraSupplements []models.Supplement) error
	ConfirmPayment(ctx context.Context, order *models.Order) error

	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, orderID uuid.UUID, since *time.Time) ([]*models.Message, error)
	MarkMessagesRead(ctx context.Context, orderID uuid.UUID, senderRole models.MessageSenderRole) error
}
