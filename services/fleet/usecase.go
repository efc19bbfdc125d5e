package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// Errors returned by the fleet use case
var (
	ErrPrestataireNotFound = errors.New("prestataire not found")
	ErrDriverNotFound      = errors.New("driver not found")
	ErrInvalidCredentials  = errors.New("invalid access code")
	ErrAccountInactive     = errors.New("account is deactivated")
	ErrValidation          = errors.New("invalid fleet payload")
)

// FleetUC defines the interface for fleet business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tapea/backoffice/services/fleet FleetUC
type FleetUC interface {
	CreatePrestataire(ctx context.Context, req *models.PrestataireCreateRequest) (*models.Prestataire, error)
	GetPrestataire(ctx context.Context, id uuid.UUID) (*models.Prestataire, error)
	ListPrestataires(ctx context.Context) ([]*models.Prestataire, error)
	SetPrestataireActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateDriver(ctx context.Context, req *models.DriverCreateRequest) (*models.Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, prestataireID *uuid.UUID) ([]*models.Driver, error)
	SetDriverActive(ctx context.Context, id uuid.UUID, active bool) error

	Login(ctx context.Context, req *models.AccessLoginRequest) (*models.AuthResponse, error)

	UpdatePosition(ctx context.Context, pos *models.DriverPosition) error
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error)
}
