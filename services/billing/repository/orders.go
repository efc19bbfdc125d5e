package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/billing"
)

// ListPaymentConfirmedOrders scans the orders settled within the half-open
// [from, to) interval. Only the confirmed totals are loaded; fees are never
// computed on supplements, so the recompute does not need them.
func (r *BillingRepo) ListPaymentConfirmedOrders(ctx context.Context, from, to time.Time) ([]*models.Order, error) {
	query := `
		SELECT id, client_id, prestataire_id, driver_id,
		       base_fare, price_per_km, distance,
		       confirmation_total, total_price, waiting_minutes, driver_earnings,
		       paid_at
		FROM orders
		WHERE status = $1 AND paid_at >= $2 AND paid_at < $3
		ORDER BY paid_at
	`
	rows, err := r.db.QueryContext(ctx, query, models.OrderStatusPaymentConfirmed, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list settled orders: %w", err)
	}
	defer rows.Close()

	var result []*models.Order
	for rows.Next() {
		order := &models.Order{Status: models.OrderStatusPaymentConfirmed}
		var prestataireID, driverID sql.NullString
		var waitingMinutes, driverEarnings sql.NullInt64
		var paidAt sql.NullTime

		err := rows.Scan(
			&order.ID,
			&order.ClientID,
			&prestataireID,
			&driverID,
			&order.RideOption.BaseFare,
			&order.RideOption.PricePerKm,
			&order.Route.Distance,
			&order.ConfirmationTotal,
			&order.TotalPrice,
			&waitingMinutes,
			&driverEarnings,
			&paidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settled order: %w", err)
		}

		if prestataireID.Valid {
			id, err := uuid.Parse(prestataireID.String)
			if err != nil {
				return nil, fmt.Errorf("invalid prestataire id in order row: %w", err)
			}
			order.PrestataireID = &id
		}
		if driverID.Valid {
			id, err := uuid.Parse(driverID.String)
			if err != nil {
				return nil, fmt.Errorf("invalid driver id in order row: %w", err)
			}
			order.DriverID = &id
		}
		if waitingMinutes.Valid {
			v := int(waitingMinutes.Int64)
			order.WaitingMinutes = &v
		}
		if driverEarnings.Valid {
			v := int(driverEarnings.Int64)
			order.DriverEarnings = &v
		}
		if paidAt.Valid {
			order.PaidAt = &paidAt.Time
		}

		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settled orders: %w", err)
	}
	return result, nil
}

// GetDriver reads a driver row, used to resolve commission percentages and
// the salaried flag during recompute
func (r *BillingRepo) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	query := `
		SELECT id, prestataire_id, full_name, commission_percent, salaried, active
		FROM drivers
		WHERE id = $1
	`
	driver := &models.Driver{}
	var prestataireID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&driver.ID,
		&prestataireID,
		&driver.FullName,
		&driver.CommissionPercent,
		&driver.Salaried,
		&driver.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", billing.ErrDriverNotFound, id)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	if prestataireID.Valid {
		pid, err := uuid.Parse(prestataireID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid prestataire id in driver row: %w", err)
		}
		driver.PrestataireID = &pid
	}
	return driver, nil
}
