package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// Errors returned by the billing use case
var (
	ErrFeeConfigNotFound = errors.New("fee configuration not found")
	ErrCollecteNotFound  = errors.New("collecte entry not found")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrAlreadyPaid       = errors.New("collecte entry already settled")
	ErrValidation        = errors.New("invalid billing payload")
)

// BillingUC defines the interface for billing business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tapea/backoffice/services/billing BillingUC
type BillingUC interface {
	GetFeeConfig(ctx context.Context) (*models.FeeConfig, error)
	UpdateFeeConfig(ctx context.Context, req *models.FeeConfigUpdateRequest) (*models.FeeConfig, error)

	Recompute(ctx context.Context, year int, month time.Month) (*models.RecomputeResult, error)
	ListCollectes(ctx context.Context, year int, month time.Month) ([]*models.Collecte, error)
	GetCollecte(ctx context.Context, id uuid.UUID) (*models.Collecte, error)
	MarkPaid(ctx context.Context, id uuid.UUID, req *models.MarkPaidRequest) (*models.Collecte, error)

	HandlePaymentConfirmed(ctx context.Context, event *models.PaymentConfirmedEvent) error
}
