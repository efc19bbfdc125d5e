package billing

import (
	"context"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// BillingGW defines the interface for billing gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tapea/backoffice/services/billing BillingGW
type BillingGW interface {
	PublishCollecteRecomputed(ctx context.Context, result *models.RecomputeResult) error
	PublishCollectePaid(ctx context.Context, entry *models.Collecte) error
}
