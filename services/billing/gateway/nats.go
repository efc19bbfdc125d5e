package gateway

import (
	"context"

	"github.com/tapea/backoffice/internal/pkg/constants"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/pkg/nats"
)

// BillingGW implements the billing.BillingGW interface over NATS
type BillingGW struct {
	cfg      *models.Config
	producer *nats.Producer
}

// NewBillingGW creates a new billing gateway
func NewBillingGW(cfg *models.Config, producer *nats.Producer) *BillingGW {
	return &BillingGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishCollecteRecomputed publishes the summary of a recompute run
func (g *BillingGW) PublishCollecteRecomputed(ctx context.Context, result *models.RecomputeResult) error {
	return g.producer.Publish(ctx, constants.SubjectCollecteRecomputed, result)
}

// PublishCollectePaid publishes a settled ledger entry
func (g *BillingGW) PublishCollectePaid(ctx context.Context, entry *models.Collecte) error {
	return g.producer.Publish(ctx, constants.SubjectCollectePaid, entry)
}
