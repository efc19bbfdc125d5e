package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	httpclient "github.com/tapea/backoffice/internal/pkg/http"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/pkg/nats"
)

// OrderGW implements the orders.OrderGW interface: NATS events plus
// internal HTTP lookups against the fleet and billing services.
type OrderGW struct {
	cfg           *models.Config
	producer      *nats.Producer
	fleetClient   *httpclient.APIKeyClient
	billingClient *httpclient.APIKeyClient
}

// NewOrderGW creates a new order gateway
func NewOrderGW(
	cfg *models.Config,
	producer *nats.Producer,
	fleetClient *httpclient.APIKeyClient,
	billingClient *httpclient.APIKeyClient,
) *OrderGW {
	return &OrderGW{
		cfg:           cfg,
		producer:      producer,
		fleetClient:   fleetClient,
		billingClient: billingClient,
	}
}

type driverEnvelope struct {
	Success bool          `json:"success"`
	Data    models.Driver `json:"data"`
	Error   string        `json:"error"`
}

type feeConfigEnvelope struct {
	Success bool             `json:"success"`
	Data    models.FeeConfig `json:"data"`
	Error   string           `json:"error"`
}

// GetDriver looks up a driver through the fleet service internal API
func (g *OrderGW) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var resp driverEnvelope
	endpoint := fmt.Sprintf("/internal/drivers/%s", driverID)
	if err := g.fleetClient.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fleet driver lookup failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("fleet driver lookup rejected: %s", resp.Error)
	}
	return &resp.Data, nil
}

// GetFeeConfig fetches the current fee configuration from the billing service
func (g *OrderGW) GetFeeConfig(ctx context.Context) (*models.FeeConfig, error) {
	var resp feeConfigEnvelope
	if err := g.billingClient.GetJSON(ctx, "/internal/fee-config", &resp); err != nil {
		return nil, fmt.Errorf("billing fee config lookup failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("billing fee config lookup rejected: %s", resp.Error)
	}
	return &resp.Data, nil
}
