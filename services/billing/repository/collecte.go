package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/billing"
)

const collecteColumns = `
	id, prestataire_id, driver_id, year, month,
	amount_due, amount_paid, service_fee_total, supplementary_commission_total,
	order_count, is_paid, paid_at, created_at, updated_at
`

func scanCollecte(row interface{ Scan(...interface{}) error }) (*models.Collecte, error) {
	entry := &models.Collecte{}
	var prestataireID, driverID sql.NullString
	var month int
	var paidAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&prestataireID,
		&driverID,
		&entry.Year,
		&month,
		&entry.AmountDue,
		&entry.AmountPaid,
		&entry.ServiceFeeTotal,
		&entry.SupplementaryCommissionTotal,
		&entry.OrderCount,
		&entry.IsPaid,
		&paidAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Month = time.Month(month)
	if prestataireID.Valid {
		id, err := uuid.Parse(prestataireID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid prestataire id in collecte row: %w", err)
		}
		entry.PrestataireID = &id
	}
	if driverID.Valid {
		id, err := uuid.Parse(driverID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid driver id in collecte row: %w", err)
		}
		entry.DriverID = &id
	}
	if paidAt.Valid {
		entry.PaidAt = &paidAt.Time
	}
	return entry, nil
}

// UpsertCollecte writes a recomputed ledger row for one billing party and
// month. An existing row that is already fully settled is returned as-is,
// never overwritten; otherwise the computed amounts replace the previous
// ones while the paid amount is preserved.
func (r *BillingRepo) UpsertCollecte(ctx context.Context, entry *models.Collecte) (*models.Collecte, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := r.findForUpdate(ctx, tx, entry)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up collecte row: %w", err)
	}

	now := time.Now().UTC()

	if existing != nil {
		if existing.IsPaid {
			// Settled months are immutable; a late recompute never reopens them
			return existing, nil
		}

		existing.AmountDue = entry.AmountDue
		existing.ServiceFeeTotal = entry.ServiceFeeTotal
		existing.SupplementaryCommissionTotal = entry.SupplementaryCommissionTotal
		existing.OrderCount = entry.OrderCount
		existing.OrderIDs = entry.OrderIDs
		existing.UpdatedAt = now

		query := `
			UPDATE collectes
			SET amount_due = $1, service_fee_total = $2,
			    supplementary_commission_total = $3, order_count = $4, updated_at = $5
			WHERE id = $6
		`
		if _, err := tx.ExecContext(ctx, query,
			existing.AmountDue, existing.ServiceFeeTotal,
			existing.SupplementaryCommissionTotal, existing.OrderCount,
			existing.UpdatedAt, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to update collecte row: %w", err)
		}

		if err := replaceCollecteOrders(ctx, tx, existing.ID, existing.OrderIDs); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return existing, nil
	}

	entry.ID = uuid.New()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO collectes (
			id, prestataire_id, driver_id, year, month,
			amount_due, amount_paid, service_fee_total, supplementary_commission_total,
			order_count, is_paid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, FALSE, $10, $11)
	`
	_, err = tx.ExecContext(ctx, query,
		entry.ID, entry.PrestataireID, entry.DriverID, entry.Year, int(entry.Month),
		entry.AmountDue, entry.ServiceFeeTotal, entry.SupplementaryCommissionTotal,
		entry.OrderCount, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert collecte row: %w", err)
	}

	if err := replaceCollecteOrders(ctx, tx, entry.ID, entry.OrderIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *BillingRepo) findForUpdate(ctx context.Context, tx *sqlx.Tx, entry *models.Collecte) (*models.Collecte, error) {
	var row *sql.Row
	if entry.PrestataireID != nil {
		query := `SELECT ` + collecteColumns + ` FROM collectes
			WHERE prestataire_id = $1 AND year = $2 AND month = $3 FOR UPDATE`
		row = tx.QueryRowContext(ctx, query, entry.PrestataireID, entry.Year, int(entry.Month))
	} else {
		query := `SELECT ` + collecteColumns + ` FROM collectes
			WHERE driver_id = $1 AND year = $2 AND month = $3 FOR UPDATE`
		row = tx.QueryRowContext(ctx, query, entry.DriverID, entry.Year, int(entry.Month))
	}

	existing, err := scanCollecte(row)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func replaceCollecteOrders(ctx context.Context, tx *sqlx.Tx, collecteID uuid.UUID, orderIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM collecte_orders WHERE collecte_id = $1`, collecteID); err != nil {
		return fmt.Errorf("failed to clear collecte orders: %w", err)
	}
	for _, orderID := range orderIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO collecte_orders (collecte_id, order_id) VALUES ($1, $2)`,
			collecteID, orderID); err != nil {
			return fmt.Errorf("failed to insert collecte order: %w", err)
		}
	}
	return nil
}

// GetCollecte reads one ledger row with its order ids
func (r *BillingRepo) GetCollecte(ctx context.Context, id uuid.UUID) (*models.Collecte, error) {
	query := `SELECT ` + collecteColumns + ` FROM collectes WHERE id = $1`
	entry, err := scanCollecte(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrCollecteNotFound
		}
		return nil, fmt.Errorf("failed to get collecte: %w", err)
	}

	if err := r.db.SelectContext(ctx, &entry.OrderIDs,
		`SELECT order_id FROM collecte_orders WHERE collecte_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to load collecte orders: %w", err)
	}
	return entry, nil
}

// ListCollectes reads the ledger rows of one billing month
func (r *BillingRepo) ListCollectes(ctx context.Context, year int, month time.Month) ([]*models.Collecte, error) {
	query := `SELECT ` + collecteColumns + ` FROM collectes
		WHERE year = $1 AND month = $2
		ORDER BY amount_due DESC`

	rows, err := r.db.QueryContext(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list collectes: %w", err)
	}
	defer rows.Close()

	var result []*models.Collecte
	for rows.Next() {
		entry, err := scanCollecte(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collecte row: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collecte rows: %w", err)
	}
	return result, nil
}

// UpdateCollectePayment persists a settlement change
func (r *BillingRepo) UpdateCollectePayment(ctx context.Context, entry *models.Collecte) error {
	query := `
		UPDATE collectes
		SET amount_paid = $1, is_paid = $2, paid_at = $3, updated_at = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		entry.AmountPaid, entry.IsPaid, entry.PaidAt, entry.UpdatedAt, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update collecte payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return billing.ErrCollecteNotFound
	}
	return nil
}
