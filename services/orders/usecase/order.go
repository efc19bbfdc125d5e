package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/pkg/pricing"
	"github.com/tapea/backoffice/services/orders"
)

type orderUC struct {
	cfg       *models.Config
	orderRepo orders.OrderRepo
	orderGW   orders.OrderGW
}

// NewOrderUC creates a new order use case
func NewOrderUC(
	cfg *models.Config,
	orderRepo orders.OrderRepo,
	orderGW orders.OrderGW,
) (orders.OrderUC, error) {
	return &orderUC{
		cfg:       cfg,
		orderRepo: orderRepo,
		orderGW:   orderGW,
	}, nil
}

// CreateOrder books a ride and locks its confirmation price. The price a
// client sees at booking time never changes afterwards; waiting time and
// extra stops only ever add to the final total.
func (uc *orderUC) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client id", orders.ErrValidation)
	}

	var prestataireID *uuid.UUID
	if req.PrestataireID != "" {
		id, err := uuid.Parse(req.PrestataireID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid prestataire id", orders.ErrValidation)
		}
		prestataireID = &id
	}

	if req.PaymentMethod != models.PaymentMethodCash && req.PaymentMethod != models.PaymentMethodCard {
		return nil, fmt.Errorf("%w: unknown payment method %q", orders.ErrValidation, req.PaymentMethod)
	}
	if req.RideOption.BaseFare < 0 || req.RideOption.PricePerKm < 0 {
		return nil, fmt.Errorf("%w: negative tariff", orders.ErrValidation)
	}

	supplements := make([]models.Supplement, 0, len(req.Supplements))
	for _, item := range req.Supplements {
		supplements = append(supplements, item.Normalize())
	}

	distanceFare, err := pricing.DistanceFare(req.Route.Distance, req.RideOption.PricePerKm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", orders.ErrValidation, err)
	}

	confirmationTotal := req.RideOption.BaseFare + distanceFare + pricing.SupplementsTotal(supplements)
	if req.ConfirmationTotal != nil {
		// The booking flow may lock a price that includes uplifts not
		// itemized as supplements (passenger count, altitude). Trust it,
		// but never below zero.
		if *req.ConfirmationTotal < 0 {
			return nil, fmt.Errorf("%w: negative confirmation total", orders.ErrValidation)
		}
		confirmationTotal = *req.ConfirmationTotal
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:                uuid.New(),
		ClientID:          clientID,
		PrestataireID:     prestataireID,
		Status:            models.OrderStatusPending,
		RideOption:        req.RideOption,
		Route:             req.Route,
		Supplements:       supplements,
		PaymentMethod:     req.PaymentMethod,
		ConfirmationTotal: confirmationTotal,
		TotalPrice:        confirmationTotal,
		ScheduledAt:       req.ScheduledAt,
		ConfirmedAt:       &now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.orderGW.PublishOrderCreated(ctx, order); err != nil {
		// The order is committed; the event stream catches up on the next
		// status change.
		logger.Warn("Failed to publish order created event",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	logger.Info("Order created",
		logger.String("order_id", order.ID.String()),
		logger.Int("confirmation_total", order.ConfirmationTotal))
	return order, nil
}

// GetOrder retrieves an order by ID
func (uc *orderUC) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return uc.orderRepo.GetOrder(ctx, id)
}

// ListOrders retrieves orders matching the filter
func (uc *orderUC) ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	return uc.orderRepo.ListOrders(ctx, filter)
}

// UpdateStatus advances an order through its state machine. Illegal
// transitions are rejected; accepting an order requires a driver.
func (uc *orderUC) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.OrderStatusUpdateRequest) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	from := order.Status

	if !order.Status.CanTransition(req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", orders.ErrInvalidTransition, order.Status, req.Status)
	}

	if req.Status == models.OrderStatusAccepted {
		if req.DriverID == "" {
			return nil, orders.ErrDriverRequired
		}
		driverID, err := uuid.Parse(req.DriverID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid driver id", orders.ErrValidation)
		}
		order.DriverID = &driverID

		if err := uc.lockSalariedEarnings(ctx, order); err != nil {
			return nil, err
		}
	}

	order.Status = req.Status
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.UpdateStatus(ctx, order, from); err != nil {
		return nil, err
	}

	if err := uc.orderGW.PublishStatusChanged(ctx, order); err != nil {
		logger.Warn("Failed to publish status change",
			logger.String("order_id", order.ID.String()),
			logger.String("status", string(order.Status)),
			logger.Err(err))
	}

	logger.Info("Order status updated",
		logger.String("order_id", order.ID.String()),
		logger.String("status", string(order.Status)))
	return order, nil
}

// lockSalariedEarnings fixes the earnings of a salaried platform driver at
// assignment time. Salaried rides never go through the fee split, so their
// pay has to be pinned while the confirmation price is authoritative.
func (uc *orderUC) lockSalariedEarnings(ctx context.Context, order *models.Order) error {
	driver, err := uc.orderGW.GetDriver(ctx, *order.DriverID)
	if err != nil {
		return fmt.Errorf("failed to resolve assigned driver: %w", err)
	}
	if !driver.Salaried {
		if order.PrestataireID == nil && driver.PrestataireID != nil {
			order.PrestataireID = driver.PrestataireID
		}
		return nil
	}

	feeCfg, err := uc.orderGW.GetFeeConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch fee config: %w", err)
	}
	earnings := int(math.Round(float64(order.ConfirmationTotal) * feeCfg.SalariedCommissionPercent / 100))
	order.DriverEarnings = &earnings
	return nil
}

// CompleteOrder closes out a ride with the waiting time and supplements
// accrued on the road. The service fee base stays the confirmation price;
// everything added here is fee-free.
func (uc *orderUC) CompleteOrder(ctx context.Context, id uuid.UUID, req *models.OrderCompleteRequest) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(models.OrderStatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", orders.ErrInvalidTransition, order.Status, models.OrderStatusCompleted)
	}

	var extra []models.Supplement
	for _, item := range req.Supplements {
		s := item.Normalize()
		s.PostConfirmation = true
		extra = append(extra, s)
	}

	if req.WaitingMinutes != nil && *req.WaitingMinutes < 0 {
		return nil, fmt.Errorf("%w: negative waiting minutes", orders.ErrValidation)
	}
	order.WaitingMinutes = req.WaitingMinutes

	waitingFare := pricing.WaitingFare(order.WaitingMinutes, uc.cfg.Fare)
	order.TotalPrice = order.ConfirmationTotal + waitingFare + pricing.SupplementsTotal(extra)

	now := time.Now().UTC()
	order.Status = models.OrderStatusCompleted
	order.CompletedAt = &now
	order.UpdatedAt = now

	// Totals and supplements are committed together; a failure here leaves
	// nothing behind that a retry would duplicate.
	if err := uc.orderRepo.CompleteOrder(ctx, order, extra); err != nil {
		return nil, err
	}
	order.Supplements = append(order.Supplements, extra...)

	if err := uc.orderGW.PublishStatusChanged(ctx, order); err != nil {
		logger.Warn("Failed to publish status change",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	logger.Info("Order completed",
		logger.String("order_id", order.ID.String()),
		logger.Int("total_price", order.TotalPrice),
		logger.Int("waiting_fare", waitingFare))
	return order, nil
}

// ConfirmPayment marks a completed order as paid, locks its financial
// fields and notifies the billing service.
func (uc *orderUC) ConfirmPayment(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusPaymentConfirmed {
		return nil, orders.ErrOrderFinalized
	}
	if !order.Status.CanTransition(models.OrderStatusPaymentConfirmed) {
		return nil, fmt.Errorf("%w: %s -> %s", orders.ErrInvalidTransition, order.Status, models.OrderStatusPaymentConfirmed)
	}

	now := time.Now().UTC()
	order.Status = models.OrderStatusPaymentConfirmed
	order.PaidAt = &now
	order.UpdatedAt = now

	if err := uc.orderRepo.ConfirmPayment(ctx, order); err != nil {
		return nil, err
	}

	event := &models.PaymentConfirmedEvent{
		OrderID:       order.ID,
		PrestataireID: order.PrestataireID,
		DriverID:      order.DriverID,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		PaidAt:        now,
	}
	if err := uc.orderGW.PublishPaymentConfirmed(ctx, event); err != nil {
		// The monthly recompute is the source of truth; the event only
		// keeps the current period fresh.
		logger.Error("Failed to publish payment confirmed event",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	logger.Info("Order payment confirmed",
		logger.String("order_id", order.ID.String()),
		logger.Int("total_price", order.TotalPrice))
	return order, nil
}

// GetBreakdown computes the earnings decomposition of an order for the
// admin and prestataire dashboards.
func (uc *orderUC) GetBreakdown(ctx context.Context, id uuid.UUID) (*models.FareBreakdown, error) {
	order, err := uc.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	feeCfg, err := uc.orderGW.GetFeeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fee config: %w", err)
	}

	var driver *models.Driver
	if order.DriverID != nil {
		driver, err = uc.orderGW.GetDriver(ctx, *order.DriverID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve driver: %w", err)
		}
	}

	return pricing.ComputeBreakdown(order, driver, feeCfg, uc.cfg.Fare)
}

// PostMessage appends a message to an order conversation
func (uc *orderUC) PostMessage(ctx context.Context, orderID uuid.UUID, req *models.MessageCreateRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("%w: empty message body", orders.ErrValidation)
	}
	switch req.SenderRole {
	case models.MessageSenderClient, models.MessageSenderDriver, models.MessageSenderAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown sender role %q", orders.ErrValidation, req.SenderRole)
	}
	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sender id", orders.ErrValidation)
	}

	if _, err := uc.orderRepo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         uuid.New(),
		OrderID:    orderID,
		SenderID:   senderID,
		SenderRole: req.SenderRole,
		Body:       req.Body,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.orderRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages retrieves an order conversation, optionally only the
// messages newer than the poller's cursor
func (uc *orderUC) ListMessages(ctx context.Context, orderID uuid.UUID, since *time.Time) ([]*models.Message, error) {
	return uc.orderRepo.ListMessages(ctx, orderID, since)
}

// MarkMessagesRead acknowledges the messages written by the given role
func (uc *orderUC) MarkMessagesRead(ctx context.Context, orderID uuid.UUID, role models.MessageSenderRole) error {
	return uc.orderRepo.MarkMessagesRead(ctx, orderID, role)
}
