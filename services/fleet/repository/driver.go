package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/fleet"
)

// CreateDriver inserts a new driver
func (r *FleetRepo) CreateDriver(ctx context.Context, d *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, prestataire_id, full_name, phone, vehicle_model, vehicle_plate,
			access_code_hash, commission_percent, salaried, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.PrestataireID, d.FullName, d.Phone, d.VehicleModel, d.VehiclePlate,
		d.AccessCodeHash, d.CommissionPercent, d.Salaried, d.Active, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

const driverColumns = `
	id, prestataire_id, full_name, phone, vehicle_model, vehicle_plate,
	access_code_hash, commission_percent, salaried, active, created_at, updated_at
`

// GetDriver retrieves a driver by ID
func (r *FleetRepo) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	d := &models.Driver{}
	err := r.db.GetContext(ctx, d, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return d, nil
}

// ListDrivers retrieves drivers, optionally scoped to one prestataire
func (r *FleetRepo) ListDrivers(ctx context.Context, prestataireID *uuid.UUID) ([]*models.Driver, error) {
	var result []*models.Driver
	var err error
	if prestataireID != nil {
		query := `SELECT ` + driverColumns + ` FROM drivers WHERE prestataire_id = $1 ORDER BY full_name`
		err = r.db.SelectContext(ctx, &result, query, *prestataireID)
	} else {
		query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY full_name`
		err = r.db.SelectContext(ctx, &result, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return result, nil
}

// SetDriverActive toggles the active flag of a driver
func (r *FleetRepo) SetDriverActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE drivers SET active = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fleet.ErrDriverNotFound
	}
	return nil
}
