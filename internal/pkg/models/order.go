package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusAccepted         OrderStatus = "accepted"
	OrderStatusDriverEnRoute    OrderStatus = "driver_en_route"
	OrderStatusArrived          OrderStatus = "arrived"
	OrderStatusInProgress       OrderStatus = "in_progress"
	OrderStatusCompleted        OrderStatus = "completed"
	OrderStatusPaymentConfirmed OrderStatus = "payment_confirmed"
	OrderStatusCancelled        OrderStatus = "cancelled"
)

// orderTransitions is the legal transition table for the order state machine.
// Cancellation is only allowed before the ride is underway.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:       {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:      {OrderStatusDriverEnRoute, OrderStatusCancelled},
	OrderStatusDriverEnRoute: {OrderStatusArrived, OrderStatusCancelled},
	OrderStatusArrived:       {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress:    {OrderStatusCompleted},
	OrderStatusCompleted:     {OrderStatusPaymentConfirmed},
}

// CanTransition reports whether moving from the current status to target is legal
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// PaymentMethod represents how the client pays for the ride
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// SupplementKind distinguishes manually added supplements from
// automatically applied ones (passenger count, altitude surcharges)
type SupplementKind string

const (
	SupplementKindFixed SupplementKind = "fixed"
	SupplementKindAuto  SupplementKind = "auto"
)

// Supplement is an itemized price uplift attached to an order
type Supplement struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	OrderID   uuid.UUID      `json:"order_id" db:"order_id"`
	Name      string         `json:"name" db:"name"`
	UnitPrice int            `json:"unit_price" db:"unit_price"`
	Quantity  int            `json:"quantity" db:"quantity"`
	Kind      SupplementKind `json:"kind" db:"kind"`
	// PostConfirmation marks supplements accrued on the road (extra stops),
	// which are outside the confirmed price the service fee is based on.
	PostConfirmation bool `json:"post_confirmation,omitempty" db:"post_confirmation"`
}

// RideOption holds the tariff parameters the order was booked with
type RideOption struct {
	Name       string `json:"name" db:"ride_option_name"`
	BaseFare   int    `json:"base_fare" db:"base_fare"`
	PricePerKm int    `json:"price_per_km" db:"price_per_km"`
}

// RouteInfo describes the booked route. Distance comes from the mobile
// clients and is unit-ambiguous (see pricing.NormalizeDistanceKm).
type RouteInfo struct {
	Distance       float64 `json:"distance" db:"distance"`
	PickupAddress  string  `json:"pickup_address" db:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address" db:"dropoff_address"`
}

// Order represents a single ride
type Order struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	ClientID      uuid.UUID     `json:"client_id" db:"client_id"`
	PrestataireID *uuid.UUID    `json:"prestataire_id,omitempty" db:"prestataire_id"`
	DriverID      *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	Status        OrderStatus   `json:"status" db:"status"`
	RideOption    RideOption    `json:"ride_option"`
	Route         RouteInfo     `json:"route"`
	Supplements   []Supplement  `json:"supplements,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`

	// ConfirmationTotal is the fee-inclusive price locked in when the
	// booking was confirmed. The platform service fee is computed against
	// this amount only, never against later waiting or stop charges.
	ConfirmationTotal int `json:"confirmation_total" db:"confirmation_total"`
	// TotalPrice is the final amount the client pays, including waiting
	// time and supplements accrued after confirmation.
	TotalPrice     int  `json:"total_price" db:"total_price"`
	WaitingMinutes *int `json:"waiting_minutes,omitempty" db:"waiting_minutes"`
	// DriverEarnings is only stored for salaried platform drivers, whose
	// pay is fixed at order time instead of derived from the fee split.
	DriverEarnings *int `json:"driver_earnings,omitempty" db:"driver_earnings"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty" db:"scheduled_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty" db:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// OrderCreateRequest is the payload for creating a new order
type OrderCreateRequest struct {
	ClientID      string           `json:"client_id"`
	PrestataireID string           `json:"prestataire_id,omitempty"`
	RideOption    RideOption       `json:"ride_option"`
	Route         RouteInfo        `json:"route"`
	Supplements   []SupplementItem `json:"supplements,omitempty"`
	PaymentMethod PaymentMethod    `json:"payment_method"`
	// ConfirmationTotal is the fee-inclusive price the booking flow locked
	// in, including uplifts not itemized as supplements. When absent the
	// price is computed from base fare, distance and supplements.
	ConfirmationTotal *int       `json:"confirmation_total,omitempty"`
	ScheduledAt       *time.Time `json:"scheduled_at,omitempty"`
}

// SupplementItem is a supplement as sent by clients. Legacy mobile builds
// still send prix_xpf and nom, so both spellings are accepted.
type SupplementItem struct {
	Name       string         `json:"name"`
	LegacyName string         `json:"nom,omitempty"`
	UnitPrice  *int           `json:"unit_price,omitempty"`
	LegacyPrix *int           `json:"prix_xpf,omitempty"`
	Quantity   int            `json:"quantity,omitempty"`
	Kind       SupplementKind `json:"kind,omitempty"`
}

// Normalize resolves the legacy field spellings into a Supplement
func (s SupplementItem) Normalize() Supplement {
	name := s.Name
	if name == "" {
		name = s.LegacyName
	}
	price := 0
	if s.UnitPrice != nil {
		price = *s.UnitPrice
	} else if s.LegacyPrix != nil {
		price = *s.LegacyPrix
	}
	qty := s.Quantity
	if qty <= 0 {
		qty = 1
	}
	kind := s.Kind
	if kind == "" {
		kind = SupplementKindFixed
	}
	return Supplement{Name: name, UnitPrice: price, Quantity: qty, Kind: kind}
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Status        OrderStatus `query:"status"`
	PrestataireID string      `query:"prestataire_id"`
	DriverID      string      `query:"driver_id"`
	ClientID      string      `query:"client_id"`
	Limit         int         `query:"limit"`
	Offset        int         `query:"offset"`
}

// OrderStatusUpdateRequest advances an order through its state machine
type OrderStatusUpdateRequest struct {
	Status   OrderStatus `json:"status"`
	DriverID string      `json:"driver_id,omitempty"`
}

// OrderCompleteRequest closes out the ride with the values accrued on the road
type OrderCompleteRequest struct {
	WaitingMinutes *int             `json:"waiting_minutes,omitempty"`
	Supplements    []SupplementItem `json:"supplements,omitempty"`
}

// PaymentConfirmedEvent is published on NATS when an order payment is confirmed
type PaymentConfirmedEvent struct {
	OrderID       uuid.UUID     `json:"order_id"`
	PrestataireID *uuid.UUID    `json:"prestataire_id,omitempty"`
	DriverID      *uuid.UUID    `json:"driver_id,omitempty"`
	TotalPrice    int           `json:"total_price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaidAt        time.Time     `json:"paid_at"`
}
