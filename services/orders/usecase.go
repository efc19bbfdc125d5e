package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// Errors returned by the order use case
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("illegal order status transition")
	ErrOrderFinalized    = errors.New("order financial fields are locked")
	ErrDriverRequired    = errors.New("driver assignment required for this transition")
	ErrValidation        = errors.New("invalid order payload")
)

// OrderUC defines the interface for order business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tapea/backoffice/services/orders OrderUC
type OrderUC interface {
	CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.OrderStatusUpdateRequest) (*models.Order, error)
	CompleteOrder(ctx context.Context, id uuid.UUID, req *models.OrderCompleteRequest) (*models.Order, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetBreakdown(ctx context.Context, id uuid.UUID) (*models.FareBreakdown, error)

	PostMessage(ctx context.Context, orderID uuid.UUID, req *models.MessageCreateRequest) (*models.Message, error)
	ListMessages(ctx context.Context, orderID uuid.UUID, since *time.Time) ([]*models.Message, error)
	MarkMessagesRead(ctx context.Context, orderID uuid.UUID, role models.MessageSenderRole) error
}
