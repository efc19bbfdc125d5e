package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/orders"
)

// OrderRepo provides postgres access to orders and their supplements
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateOrder inserts a new order and its supplements in one transaction
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			id, client_id, prestataire_id, driver_id, status,
			ride_option_name, base_fare, price_per_km,
			distance, pickup_address, dropoff_address,
			payment_method, confirmation_total, total_price,
			waiting_minutes, driver_earnings,
			scheduled_at, confirmed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		order.ID,
		order.ClientID,
		order.PrestataireID,
		order.DriverID,
		order.Status,
		order.RideOption.Name,
		order.RideOption.BaseFare,
		order.RideOption.PricePerKm,
		order.Route.Distance,
		order.Route.PickupAddress,
		order.Route.DropoffAddress,
		order.PaymentMethod,
		order.ConfirmationTotal,
		order.TotalPrice,
		order.WaitingMinutes,
		order.DriverEarnings,
		order.ScheduledAt,
		order.ConfirmedAt,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := insertSupplements(ctx, tx, order.ID, order.Supplements); err != nil {
		return err
	}

	return tx.Commit()
}

func insertSupplements(ctx context.Context, tx *sqlx.Tx, orderID uuid.UUID, supplements []models.Supplement) error {
	if len(supplements) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_supplements (id, order_id, name, unit_price, quantity, kind, post_confirmation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i := range supplements {
		s := &supplements[i]
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.OrderID = orderID
		if _, err := tx.ExecContext(ctx, query, s.ID, s.OrderID, s.Name, s.UnitPrice, s.Quantity, s.Kind, s.PostConfirmation); err != nil {
			return fmt.Errorf("failed to insert supplement: %w", err)
		}
	}
	return nil
}

const orderColumns = `
	id, client_id, prestataire_id, driver_id, status,
	ride_option_name, base_fare, price_per_km,
	distance, pickup_address, dropoff_address,
	payment_method, confirmation_total, total_price,
	waiting_minutes, driver_earnings,
	scheduled_at, confirmed_at, completed_at, paid_at, created_at, updated_at
`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	order := &models.Order{}
	var prestataireID, driverID sql.NullString
	var waitingMinutes, driverEarnings sql.NullInt64
	var scheduledAt, confirmedAt, completedAt, paidAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.ClientID,
		&prestataireID,
		&driverID,
		&order.Status,
		&order.RideOption.Name,
		&order.RideOption.BaseFare,
		&order.RideOption.PricePerKm,
		&order.Route.Distance,
		&order.Route.PickupAddress,
		&order.Route.DropoffAddress,
		&order.PaymentMethod,
		&order.ConfirmationTotal,
		&order.TotalPrice,
		&waitingMinutes,
		&driverEarnings,
		&scheduledAt,
		&confirmedAt,
		&completedAt,
		&paidAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
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
	if scheduledAt.Valid {
		order.ScheduledAt = &scheduledAt.Time
	}
	if confirmedAt.Valid {
		order.ConfirmedAt = &confirmedAt.Time
	}
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}
	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}

	return order, nil
}

// GetOrder retrieves an order with its supplements
func (r *OrderRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orders.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := r.loadSupplements(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepo) loadSupplements(ctx context.Context, order *models.Order) error {
	query := `
		SELECT id, order_id, name, unit_price, quantity, kind, post_confirmation
		FROM order_supplements
		WHERE order_id = $1
		ORDER BY id
	`
	var supplements []models.Supplement
	if err := r.db.SelectContext(ctx, &supplements, query, order.ID); err != nil {
		return fmt.Errorf("failed to load supplements: %w", err)
	}
	order.Supplements = supplements
	return nil
}

// ListOrders retrieves orders matching the filter, most recent first
func (r *OrderRepo) ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(column, value string) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Status != "" {
		addCondition("status", string(filter.Status))
	}
	if filter.PrestataireID != "" {
		addCondition("prestataire_id", filter.PrestataireID)
	}
	if filter.DriverID != "" {
		addCondition("driver_id", filter.DriverID)
	}
	if filter.ClientID != "" {
		addCondition("client_id", filter.ClientID)
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var result []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}

	for _, order := range result {
		if err := r.loadSupplements(ctx, order); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UpdateStatus persists a status change and the driver assignment if any.
// The expected current status guards against concurrent transitions: a row
// someone else already moved matches zero rows and the change is rejected.
func (r *OrderRepo) UpdateStatus(ctx context.Context, order *models.Order, from models.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1, driver_id = $2, prestataire_id = $3, updated_at = $4
		WHERE id = $5 AND status = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		order.Status, order.DriverID, order.PrestataireID, order.UpdatedAt,
		order.ID, from)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: order is no longer %s", orders.ErrInvalidTransition, from)
	}
	return nil
}

// CompleteOrder persists the final totals and the supplements accrued on
// the road in one transaction, so a failed completion leaves no orphaned
// money-bearing rows behind for a retry to duplicate.
func (r *OrderRepo) CompleteOrder(ctx context.Context, order *models.Order, extraSupplements []models.Supplement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE orders
		SET status = $1, total_price = $2, waiting_minutes = $3,
		    driver_earnings = $4, completed_at = $5, updated_at = $6
		WHERE id = $7 AND status = $8
	`
	res, err := tx.ExecContext(
		ctx,
		query,
		order.Status,
		order.TotalPrice,
		order.WaitingMinutes,
		order.DriverEarnings,
		order.CompletedAt,
		order.UpdatedAt,
		order.ID,
		models.OrderStatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to complete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: order is no longer %s", orders.ErrInvalidTransition, models.OrderStatusInProgress)
	}

	if err := insertSupplements(ctx, tx, order.ID, extraSupplements); err != nil {
		return err
	}
	return tx.Commit()
}

// ConfirmPayment marks the order paid. Financial fields are frozen from
// here on: only the status and paid timestamp change.
func (r *OrderRepo) ConfirmPayment(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET status = $1, paid_at = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		models.OrderStatusPaymentConfirmed, order.PaidAt, order.UpdatedAt,
		order.ID, models.OrderStatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to confirm payment: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return orders.ErrOrderNotFound
	}
	return nil
}
