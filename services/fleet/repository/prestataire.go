package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tapea/backoffice/internal/pkg/database"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/fleet"
)

// FleetRepo provides postgres and redis access for the fleet service
type FleetRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FleetRepo {
	return &FleetRepo{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
	}
}

// CreatePrestataire inserts a new prestataire
func (r *FleetRepo) CreatePrestataire(ctx context.Context, p *models.Prestataire) error {
	query := `
		INSERT INTO prestataires (id, name, type, access_code_hash, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Type, p.AccessCodeHash, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prestataire: %w", err)
	}
	return nil
}

// GetPrestataire retrieves a prestataire by ID
func (r *FleetRepo) GetPrestataire(ctx context.Context, id uuid.UUID) (*models.Prestataire, error) {
	query := `
		SELECT id, name, type, access_code_hash, active, created_at, updated_at
		FROM prestataires
		WHERE id = $1
	`
	p := &models.Prestataire{}
	err := r.db.GetContext(ctx, p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrPrestataireNotFound
		}
		return nil, fmt.Errorf("failed to get prestataire: %w", err)
	}
	return p, nil
}

// ListPrestataires retrieves all prestataires, newest first
func (r *FleetRepo) ListPrestataires(ctx context.Context) ([]*models.Prestataire, error) {
	query := `
		SELECT id, name, type, access_code_hash, active, created_at, updated_at
		FROM prestataires
		ORDER BY created_at DESC
	`
	var result []*models.Prestataire
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to list prestataires: %w", err)
	}
	return result, nil
}

// SetPrestataireActive toggles the active flag of a prestataire
func (r *FleetRepo) SetPrestataireActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE prestataires SET active = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update prestataire: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fleet.ErrPrestataireNotFound
	}
	return nil
}
