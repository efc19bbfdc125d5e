package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// FleetRepo defines the interface for fleet data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tapea/backoffice/services/fleet FleetRepo
type FleetRepo interface {
	CreatePrestataire(ctx context.Context, p *models.Prestataire) error
	GetPrestataire(ctx context.Context, id uuid.UUID) (*models.Prestataire, error)
	ListPrestataires(ctx context.Context) ([]*models.Prestataire, error)
	SetPrestataireActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateDriver(ctx context.Context, d *models.Driver) error
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, prestataireID *uuid.UUID) ([]*models.Driver, error)
	SetDriverActive(ctx context.Context, id uuid.UUID, active bool) error

	StorePosition(ctx context.Context, pos *models.DriverPosition) error
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error)
}
