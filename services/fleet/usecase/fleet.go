package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/tapea/backoffice/internal/pkg/jwt"
	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/utils"
	"github.com/tapea/backoffice/services/fleet"
)

const minAccessCodeLength = 6

type fleetUC struct {
	cfg       *models.Config
	fleetRepo fleet.FleetRepo
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(cfg *models.Config, fleetRepo fleet.FleetRepo) (fleet.FleetUC, error) {
	return &fleetUC{
		cfg:       cfg,
		fleetRepo: fleetRepo,
	}, nil
}

// CreatePrestataire onboards a service-providing entity. The access code is
// stored bcrypt-hashed, never in clear.
func (uc *fleetUC) CreatePrestataire(ctx context.Context, req *models.PrestataireCreateRequest) (*models.Prestataire, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", fleet.ErrValidation)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown prestataire type %q", fleet.ErrValidation, req.Type)
	}
	if len(req.AccessCode) < minAccessCodeLength {
		return nil, fmt.Errorf("%w: access code must be at least %d characters", fleet.ErrValidation, minAccessCodeLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AccessCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access code: %w", err)
	}

	now := time.Now().UTC()
	p := &models.Prestataire{
		ID:             uuid.New(),
		Name:           req.Name,
		Type:           req.Type,
		AccessCodeHash: string(hash),
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.fleetRepo.CreatePrestataire(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Prestataire onboarded",
		logger.String("prestataire_id", p.ID.String()),
		logger.String("type", string(p.Type)))
	return p, nil
}

// GetPrestataire retrieves a prestataire by ID
func (uc *fleetUC) GetPrestataire(ctx context.Context, id uuid.UUID) (*models.Prestataire, error) {
	return uc.fleetRepo.GetPrestataire(ctx, id)
}

// ListPrestataires retrieves all prestataires
func (uc *fleetUC) ListPrestataires(ctx context.Context) ([]*models.Prestataire, error) {
	return uc.fleetRepo.ListPrestataires(ctx)
}

// SetPrestataireActive toggles a prestataire's active flag
func (uc *fleetUC) SetPrestataireActive(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.fleetRepo.SetPrestataireActive(ctx, id, active)
}

// CreateDriver onboards a driver. Drivers without a prestataire are either
// patenté (independent) or salaried by the platform; both are legal.
func (uc *fleetUC) CreateDriver(ctx context.Context, req *models.DriverCreateRequest) (*models.Driver, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", fleet.ErrValidation)
	}

	var prestataireID *uuid.UUID
	if req.PrestataireID != "" {
		id, err := uuid.Parse(req.PrestataireID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid prestataire id", fleet.ErrValidation)
		}
		if _, err := uc.fleetRepo.GetPrestataire(ctx, id); err != nil {
			return nil, err
		}
		prestataireID = &id
	}
	if req.Salaried && prestataireID != nil {
		return nil, fmt.Errorf("%w: a salaried platform driver cannot belong to a prestataire", fleet.ErrValidation)
	}

	commission := models.DefaultDriverCommissionPercent
	if req.CommissionPercent != nil {
		if *req.CommissionPercent < 0 || *req.CommissionPercent > 100 {
			return nil, fmt.Errorf("%w: commission percent out of range", fleet.ErrValidation)
		}
		commission = *req.CommissionPercent
	}

	var accessCodeHash string
	if req.AccessCode != "" {
		if len(req.AccessCode) < minAccessCodeLength {
			return nil, fmt.Errorf("%w: access code must be at least %d characters", fleet.ErrValidation, minAccessCodeLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.AccessCode), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash access code: %w", err)
		}
		accessCodeHash = string(hash)
	}

	now := time.Now().UTC()
	d := &models.Driver{
		ID:                uuid.New(),
		PrestataireID:     prestataireID,
		FullName:          req.FullName,
		Phone:             req.Phone,
		VehicleModel:      req.VehicleModel,
		VehiclePlate:      req.VehiclePlate,
		AccessCodeHash:    accessCodeHash,
		CommissionPercent: commission,
		Salaried:          req.Salaried,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.fleetRepo.CreateDriver(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Driver onboarded",
		logger.String("driver_id", d.ID.String()),
		logger.Bool("salaried", d.Salaried),
		logger.Bool("independent", d.Independent()))
	return d, nil
}

// GetDriver retrieves a driver by ID
func (uc *fleetUC) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	return uc.fleetRepo.GetDriver(ctx, id)
}

// ListDrivers retrieves drivers, optionally scoped to one prestataire
func (uc *fleetUC) ListDrivers(ctx context.Context, prestataireID *uuid.UUID) ([]*models.Driver, error) {
	return uc.fleetRepo.ListDrivers(ctx, prestataireID)
}

// SetDriverActive toggles a driver's active flag
func (uc *fleetUC) SetDriverActive(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.fleetRepo.SetDriverActive(ctx, id, active)
}

// Login exchanges an access code for a JWT. Prestataires and drivers use
// the same endpoint; the issued role follows the identity.
func (uc *fleetUC) Login(ctx context.Context, req *models.AccessLoginRequest) (*models.AuthResponse, error) {
	var (
		subjectID uuid.UUID
		role      string
		hash      string
		active    bool
	)

	switch {
	case req.PrestataireID != "":
		id, err := uuid.Parse(req.PrestataireID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid prestataire id", fleet.ErrValidation)
		}
		p, err := uc.fleetRepo.GetPrestataire(ctx, id)
		if err != nil {
			return nil, err
		}
		subjectID, role, hash, active = p.ID, jwtpkg.RolePrestataire, p.AccessCodeHash, p.Active

	case req.DriverID != "":
		id, err := uuid.Parse(req.DriverID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid driver id", fleet.ErrValidation)
		}
		d, err := uc.fleetRepo.GetDriver(ctx, id)
		if err != nil {
			return nil, err
		}
		subjectID, role, hash, active = d.ID, jwtpkg.RoleDriver, d.AccessCodeHash, d.Active

	default:
		return nil, fmt.Errorf("%w: prestataire_id or driver_id is required", fleet.ErrValidation)
	}

	if !active {
		return nil, fleet.ErrAccountInactive
	}
	if hash == "" {
		return nil, fleet.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.AccessCode)); err != nil {
		return nil, fleet.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(subjectID, role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("Access login",
		logger.String("subject_id", subjectID.String()),
		logger.String("role", role))
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      role,
	}, nil
}

// UpdatePosition records a live driver position for dispatch tracking
func (uc *fleetUC) UpdatePosition(ctx context.Context, pos *models.DriverPosition) error {
	if pos.Latitude < -90 || pos.Latitude > 90 || pos.Longitude < -180 || pos.Longitude > 180 {
		return fmt.Errorf("%w: coordinates out of range", fleet.ErrValidation)
	}

	if pos.Timestamp.IsZero() {
		pos.Timestamp = time.Now().UTC()
	}
	pos.Geohash = utils.EncodePosition(pos.Latitude, pos.Longitude, utils.DriverGeohashPrecision)

	return uc.fleetRepo.StorePosition(ctx, pos)
}

// NearbyDrivers finds live drivers around a point for dispatch
func (uc *fleetUC) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error) {
	if radiusKm <= 0 {
		radiusKm = 5
	}
	return uc.fleetRepo.NearbyDrivers(ctx, latitude, longitude, radiusKm)
}
