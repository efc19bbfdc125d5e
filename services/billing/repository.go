package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// BillingRepo defines the interface for billing data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tapea/backoffice/services/billing BillingRepo
type BillingRepo interface {
	GetFeeConfig(ctx context.Context) (*models.FeeConfig, error)
	UpsertFeeConfig(ctx context.Context, cfg *models.FeeConfig) error
	GetCachedFeeConfig(ctx context.Context) (*models.FeeConfig, error)
	CacheFeeConfig(ctx context.Context, cfg *models.FeeConfig) error
	InvalidateFeeConfig(ctx context.Context) error

	ListPaymentConfirmedOrders(ctx context.Context, from, to time.Time) ([]*models.Order, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)

	UpsertCollecte(ctx context.Context, entry *models.Collecte) (*models.Collecte, error)
	GetCollecte(ctx context.Context, id uuid.UUID) (*models.Collecte, error)
	ListCollectes(ctx context.Context, year int, month time.Month) ([]*models.Collecte, error)
	UpdateCollectePayment(ctx context.Context, entry *models.Collecte) error
}
