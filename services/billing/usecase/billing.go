package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/pkg/pricing"
	"github.com/tapea/backoffice/services/billing"
)

type billingUC struct {
	cfg         *models.Config
	billingRepo billing.BillingRepo
	billingGW   billing.BillingGW
}

// NewBillingUC creates a new billing use case
func NewBillingUC(
	cfg *models.Config,
	billingRepo billing.BillingRepo,
	billingGW billing.BillingGW,
) (billing.BillingUC, error) {
	return &billingUC{
		cfg:         cfg,
		billingRepo: billingRepo,
		billingGW:   billingGW,
	}, nil
}

// GetFeeConfig returns the fee configuration, cache-aside over redis.
// Absence is an error: fee computations never run on implicit defaults.
func (uc *billingUC) GetFeeConfig(ctx context.Context) (*models.FeeConfig, error) {
	if cached, _ := uc.billingRepo.GetCachedFeeConfig(ctx); cached != nil {
		return cached, nil
	}

	cfg, err := uc.billingRepo.GetFeeConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.billingRepo.CacheFeeConfig(ctx, cfg); err != nil {
		logger.Warn("Failed to cache fee config", logger.Err(err))
	}
	return cfg, nil
}

func validPercent(p float64, max float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && p < max
}

// UpdateFeeConfig applies an admin change to the fee configuration and
// invalidates the cache. The first update seeds the singleton.
func (uc *billingUC) UpdateFeeConfig(ctx context.Context, req *models.FeeConfigUpdateRequest) (*models.FeeConfig, error) {
	cfg, err := uc.billingRepo.GetFeeConfig(ctx)
	if err != nil {
		if !errors.Is(err, billing.ErrFeeConfigNotFound) {
			return nil, err
		}
		cfg = &models.FeeConfig{
			ID:                uuid.New(),
			ServiceFeePercent: 15,
		}
	}

	if req.ServiceFeePercent != nil {
		if !validPercent(*req.ServiceFeePercent, 100) {
			return nil, fmt.Errorf("%w: service fee percent out of range", billing.ErrValidation)
		}
		cfg.ServiceFeePercent = *req.ServiceFeePercent
	}
	if req.SupplementaryCommissionPercent != nil {
		if !validPercent(*req.SupplementaryCommissionPercent, 100) {
			return nil, fmt.Errorf("%w: supplementary commission percent out of range", billing.ErrValidation)
		}
		cfg.SupplementaryCommissionPercent = *req.SupplementaryCommissionPercent
	}
	if req.SalariedCommissionPercent != nil {
		if !validPercent(*req.SalariedCommissionPercent, 101) {
			return nil, fmt.Errorf("%w: salaried commission percent out of range", billing.ErrValidation)
		}
		cfg.SalariedCommissionPercent = *req.SalariedCommissionPercent
	}

	cfg.UpdatedAt = time.Now().UTC()
	if err := uc.billingRepo.UpsertFeeConfig(ctx, cfg); err != nil {
		return nil, err
	}
	if err := uc.billingRepo.InvalidateFeeConfig(ctx); err != nil {
		logger.Warn("Failed to invalidate fee config cache", logger.Err(err))
	}

	logger.Info("Fee config updated",
		logger.Float64("service_fee_percent", cfg.ServiceFeePercent),
		logger.Float64("supplementary_commission_percent", cfg.SupplementaryCommissionPercent))
	return cfg, nil
}

// ledgerKey identifies one billing party: a prestataire or an independent driver
type ledgerKey struct {
	prestataireID uuid.UUID
	driverID      uuid.UUID
}

// Recompute rebuilds the collecte ledger for one billing month from the
// settled orders. Orders that fail validation are excluded and reported,
// never silently counted as zero. Fully settled ledger rows are left
// untouched.
func (uc *billingUC) Recompute(ctx context.Context, year int, month time.Month) (*models.RecomputeResult, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", billing.ErrValidation)
	}
	if year < 2000 {
		return nil, fmt.Errorf("%w: year out of range", billing.ErrValidation)
	}

	feeCfg, err := uc.GetFeeConfig(ctx)
	if err != nil {
		return nil, err
	}

	from, to := models.PeriodBounds(year, month)
	settled, err := uc.billingRepo.ListPaymentConfirmedOrders(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := &models.RecomputeResult{Year: year, Month: month}
	groups := make(map[ledgerKey]*models.Collecte)
	drivers := make(map[uuid.UUID]*models.Driver)

	for _, order := range settled {
		entry, fees, err := uc.classifyOrder(ctx, order, year, month, feeCfg, drivers, groups)
		if err != nil {
			// Only orders with provably bad data are excluded. Anything
			// else (db down, timeout) aborts the run: persisting a ledger
			// that silently misses orders would understate what is owed.
			if !errors.Is(err, pricing.ErrInvalidOrder) {
				return nil, fmt.Errorf("recompute aborted: %w", err)
			}
			result.OrdersExcluded = append(result.OrdersExcluded, models.ExcludedOrder{
				OrderID: order.ID,
				Reason:  err.Error(),
			})
			logger.Warn("Order excluded from collecte recompute",
				logger.String("order_id", order.ID.String()),
				logger.Err(err))
			continue
		}
		if entry == nil {
			// Salaried platform ride: nothing to collect
			continue
		}

		entry.ServiceFeeTotal += fees.serviceFee
		entry.SupplementaryCommissionTotal += fees.supplementary
		entry.AmountDue += fees.serviceFee + fees.supplementary
		entry.OrderCount++
		entry.OrderIDs = append(entry.OrderIDs, order.ID)
		result.OrdersIncluded++
	}

	for _, entry := range groups {
		stored, err := uc.billingRepo.UpsertCollecte(ctx, entry)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, *stored)
	}

	if err := uc.billingGW.PublishCollecteRecomputed(ctx, result); err != nil {
		logger.Warn("Failed to publish recompute summary", logger.Err(err))
	}

	logger.Info("Collecte ledger recomputed",
		logger.Int("year", year),
		logger.Int("month", int(month)),
		logger.Int("orders_included", result.OrdersIncluded),
		logger.Int("orders_excluded", len(result.OrdersExcluded)),
		logger.Int("entries", len(result.Entries)))
	return result, nil
}

type orderFees struct {
	serviceFee    int
	supplementary int
}

// classifyOrder computes one order's platform fees and resolves the ledger
// row they accrue to. A nil entry with nil error means the order carries no
// collectable fees (salaried platform ride).
func (uc *billingUC) classifyOrder(
	ctx context.Context,
	order *models.Order,
	year int,
	month time.Month,
	feeCfg *models.FeeConfig,
	drivers map[uuid.UUID]*models.Driver,
	groups map[ledgerKey]*models.Collecte,
) (*models.Collecte, orderFees, error) {
	var driver *models.Driver
	if order.DriverID != nil {
		var ok bool
		driver, ok = drivers[*order.DriverID]
		if !ok {
			var err error
			driver, err = uc.billingRepo.GetDriver(ctx, *order.DriverID)
			if err != nil {
				// A dangling driver reference is bad data on the order;
				// any other failure is infrastructure and must propagate
				// untouched so the recompute aborts.
				if errors.Is(err, billing.ErrDriverNotFound) {
					return nil, orderFees{}, fmt.Errorf("%w: %v", pricing.ErrInvalidOrder, err)
				}
				return nil, orderFees{}, err
			}
			drivers[*order.DriverID] = driver
		}
		if driver.Salaried {
			return nil, orderFees{}, nil
		}
	}

	var key ledgerKey
	var prestataireID, driverID *uuid.UUID
	switch {
	case order.PrestataireID != nil:
		key = ledgerKey{prestataireID: *order.PrestataireID}
		prestataireID = order.PrestataireID
	case order.DriverID != nil:
		// Patenté: billed directly
		key = ledgerKey{driverID: *order.DriverID}
		driverID = order.DriverID
	default:
		return nil, orderFees{}, fmt.Errorf("%w: no billable party on order", pricing.ErrInvalidOrder)
	}

	_, serviceFee, err := pricing.SplitServiceFee(order.ConfirmationTotal, feeCfg.ServiceFeePercent)
	if err != nil {
		return nil, orderFees{}, err
	}
	supplementary := int(math.Round(float64(order.ConfirmationTotal) * feeCfg.SupplementaryCommissionPercent / 100))

	entry, ok := groups[key]
	if !ok {
		entry = &models.Collecte{
			PrestataireID: prestataireID,
			DriverID:      driverID,
			Year:          year,
			Month:         month,
		}
		groups[key] = entry
	}
	return entry, orderFees{serviceFee: serviceFee, supplementary: supplementary}, nil
}

// ListCollectes returns the ledger rows of one billing month
func (uc *billingUC) ListCollectes(ctx context.Context, year int, month time.Month) ([]*models.Collecte, error) {
	return uc.billingRepo.ListCollectes(ctx, year, month)
}

// GetCollecte returns one ledger row
func (uc *billingUC) GetCollecte(ctx context.Context, id uuid.UUID) (*models.Collecte, error) {
	return uc.billingRepo.GetCollecte(ctx, id)
}

// MarkPaid settles part or all of a ledger row. The paid flag flips only
// when the paid amount covers the due amount, and the paid timestamp is
// recorded on that first full settlement.
func (uc *billingUC) MarkPaid(ctx context.Context, id uuid.UUID, req *models.MarkPaidRequest) (*models.Collecte, error) {
	entry, err := uc.billingRepo.GetCollecte(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.IsPaid {
		return nil, billing.ErrAlreadyPaid
	}

	switch {
	case req.Full:
		entry.AmountPaid = entry.AmountDue
	case req.Amount != nil:
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: payment amount must be positive", billing.ErrValidation)
		}
		entry.AmountPaid += *req.Amount
	default:
		return nil, fmt.Errorf("%w: either amount or full is required", billing.ErrValidation)
	}

	now := time.Now().UTC()
	entry.UpdatedAt = now
	if entry.AmountPaid >= entry.AmountDue {
		entry.IsPaid = true
		entry.PaidAt = &now
	}

	if err := uc.billingRepo.UpdateCollectePayment(ctx, entry); err != nil {
		return nil, err
	}

	if entry.IsPaid {
		if err := uc.billingGW.PublishCollectePaid(ctx, entry); err != nil {
			logger.Warn("Failed to publish collecte paid event",
				logger.String("collecte_id", entry.ID.String()),
				logger.Err(err))
		}
	}

	logger.Info("Collecte payment recorded",
		logger.String("collecte_id", entry.ID.String()),
		logger.Int("amount_paid", entry.AmountPaid),
		logger.Int("amount_due", entry.AmountDue),
		logger.Bool("is_paid", entry.IsPaid))
	return entry, nil
}

// HandlePaymentConfirmed keeps the current billing period fresh when an
// order settles. The monthly recompute remains the source of truth; this
// only shortens the window where dashboards show stale totals.
func (uc *billingUC) HandlePaymentConfirmed(ctx context.Context, event *models.PaymentConfirmedEvent) error {
	year, month := models.PeriodOf(event.PaidAt)
	_, err := uc.Recompute(ctx, year, month)
	return err
}
