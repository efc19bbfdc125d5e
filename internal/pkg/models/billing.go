package models

import (
	"time"

	"github.com/google/uuid"
)

// FeeConfig is the admin-managed fee configuration singleton. Every fee
// computation reads it; its absence is an error, never a silent default.
type FeeConfig struct {
	ID uuid.UUID `json:"id" db:"id"`
	// ServiceFeePercent is the platform service fee included in the
	// confirmation price of prestataire-affiliated rides.
	ServiceFeePercent float64 `json:"service_fee_percent" db:"service_fee_percent"`
	// SupplementaryCommissionPercent is an additional platform-retained
	// percentage applied to the confirmation price.
	SupplementaryCommissionPercent float64 `json:"supplementary_commission_percent" db:"supplementary_commission_percent"`
	// SalariedCommissionPercent is the percentage used to fix the stored
	// earnings of salaried platform drivers at order time.
	SalariedCommissionPercent float64   `json:"salaried_commission_percent" db:"salaried_commission_percent"`
	UpdatedAt                 time.Time `json:"updated_at" db:"updated_at"`
}

// FeeConfigUpdateRequest is the admin payload for updating the fee configuration
type FeeConfigUpdateRequest struct {
	ServiceFeePercent              *float64 `json:"service_fee_percent,omitempty"`
	SupplementaryCommissionPercent *float64 `json:"supplementary_commission_percent,omitempty"`
	SalariedCommissionPercent      *float64 `json:"salaried_commission_percent,omitempty"`
}

// FareBreakdown is the structured earnings decomposition of one order,
// rendered by the admin and prestataire dashboards. Formatting is left to
// the callers.
type FareBreakdown struct {
	OrderID          uuid.UUID `json:"order_id"`
	BaseFare         int       `json:"base_fare"`
	DistanceFare     int       `json:"distance_fare"`
	WaitingFare      int       `json:"waiting_fare"`
	SupplementsTotal int       `json:"supplements_total"`
	// Majoration is the part of the confirmation price not explained by
	// base, distance or itemized supplements (passenger count or altitude
	// uplifts folded into the confirmed price).
	Majoration              int  `json:"majoration"`
	PreFeeSubtotal          int  `json:"pre_fee_subtotal"`
	ServiceFee              int  `json:"service_fee"`
	SupplementaryCommission int  `json:"supplementary_commission"`
	DriverEarnings          int  `json:"driver_earnings"`
	PrestataireEarnings     int  `json:"prestataire_earnings"`
	PlatformTotal           int  `json:"platform_total"`
	TotalPrice              int  `json:"total_price"`
	Salaried                bool `json:"salaried"`
}

// CollecteStatus is the settlement state of a monthly ledger entry
type CollecteStatus string

const (
	CollecteStatusPending CollecteStatus = "pending"
	CollecteStatusPartial CollecteStatus = "partial"
	CollecteStatusPaid    CollecteStatus = "paid"
)

// Collecte is a monthly billing ledger entry: the platform commissions owed
// by one prestataire, or by one independent driver, for one calendar month.
type Collecte struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	PrestataireID *uuid.UUID `json:"prestataire_id,omitempty" db:"prestataire_id"`
	DriverID      *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Year          int        `json:"year" db:"year"`
	Month         time.Month `json:"month" db:"month"`

	AmountDue                    int `json:"amount_due" db:"amount_due"`
	AmountPaid                   int `json:"amount_paid" db:"amount_paid"`
	ServiceFeeTotal              int `json:"service_fee_total" db:"service_fee_total"`
	SupplementaryCommissionTotal int `json:"supplementary_commission_total" db:"supplementary_commission_total"`
	OrderCount                   int `json:"order_count" db:"order_count"`

	OrderIDs []uuid.UUID `json:"order_ids,omitempty"`

	IsPaid    bool       `json:"is_paid" db:"is_paid"`
	PaidAt    *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Status derives the settlement state from the amounts
func (c *Collecte) Status() CollecteStatus {
	switch {
	case c.IsPaid:
		return CollecteStatusPaid
	case c.AmountPaid > 0:
		return CollecteStatusPartial
	default:
		return CollecteStatusPending
	}
}

// Outstanding returns the amount still owed, clamped at zero so a ledger
// row overpaid by historic data never reports a negative balance.
func (c *Collecte) Outstanding() int {
	if c.AmountPaid >= c.AmountDue {
		return 0
	}
	return c.AmountDue - c.AmountPaid
}

// MarkPaidRequest settles part or all of a collecte entry
type MarkPaidRequest struct {
	Amount *int `json:"amount,omitempty"`
	Full   bool `json:"full,omitempty"`
}

// RecomputeResult summarizes one collecte recompute run
type RecomputeResult struct {
	Year           int        `json:"year"`
	Month          time.Month `json:"month"`
	Entries        []Collecte `json:"entries"`
	OrdersIncluded int        `json:"orders_included"`
	// OrdersExcluded lists orders rejected by validation. They are surfaced
	// to the admin instead of being silently counted as zero.
	OrdersExcluded []ExcludedOrder `json:"orders_excluded,omitempty"`
}

// ExcludedOrder records why an order was left out of a recompute run
type ExcludedOrder struct {
	OrderID uuid.UUID `json:"order_id"`
	Reason  string    `json:"reason"`
}
