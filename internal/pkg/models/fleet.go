package models

import (
	"time"

	"github.com/google/uuid"
)

// PrestataireType classifies a service-provider entity
type PrestataireType string

const (
	PrestataireTypeTaxiCompany      PrestataireType = "taxi_company"
	PrestataireTypeTourismCompany   PrestataireType = "tourism_company"
	PrestataireTypePatenteTaxi      PrestataireType = "patente_taxi"
	PrestataireTypePatenteTourism   PrestataireType = "patente_tourism"
	PrestataireTypeRentalAgency     PrestataireType = "rental_agency"
	PrestataireTypeIndividualRenter PrestataireType = "individual_renter"
)

// Valid reports whether the type is one of the known prestataire types
func (t PrestataireType) Valid() bool {
	switch t {
	case PrestataireTypeTaxiCompany, PrestataireTypeTourismCompany,
		PrestataireTypePatenteTaxi, PrestataireTypePatenteTourism,
		PrestataireTypeRentalAgency, PrestataireTypeIndividualRenter:
		return true
	}
	return false
}

// Prestataire is a service-providing entity: a company employing drivers
// or a self-employed (patenté) individual
type Prestataire struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Type           PrestataireType `json:"type" db:"type"`
	AccessCodeHash string          `json:"-" db:"access_code_hash"`
	Active         bool            `json:"active" db:"active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// DefaultDriverCommissionPercent is the share of the subtotal a driver
// keeps when no explicit percentage was configured for them.
const DefaultDriverCommissionPercent = 95.0

// Driver represents a driver. PrestataireID is nil for drivers without an
// owning prestataire: either patenté (independent, billed directly) or
// salaried by the platform (Salaried true).
type Driver struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	PrestataireID     *uuid.UUID `json:"prestataire_id,omitempty" db:"prestataire_id"`
	FullName          string     `json:"full_name" db:"full_name"`
	Phone             string     `json:"phone" db:"phone"`
	VehicleModel      string     `json:"vehicle_model" db:"vehicle_model"`
	VehiclePlate      string     `json:"vehicle_plate" db:"vehicle_plate"`
	AccessCodeHash    string     `json:"-" db:"access_code_hash"`
	CommissionPercent float64    `json:"commission_percent" db:"commission_percent"`
	Salaried          bool       `json:"salaried" db:"salaried"`
	Active            bool       `json:"active" db:"active"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// Independent reports whether the driver is billed directly rather than
// through a prestataire
func (d *Driver) Independent() bool {
	return d.PrestataireID == nil && !d.Salaried
}

// PrestataireCreateRequest is the payload for onboarding a prestataire
type PrestataireCreateRequest struct {
	Name       string          `json:"name"`
	Type       PrestataireType `json:"type"`
	AccessCode string          `json:"access_code"`
}

// DriverCreateRequest is the payload for onboarding a driver
type DriverCreateRequest struct {
	PrestataireID     string   `json:"prestataire_id,omitempty"`
	FullName          string   `json:"full_name"`
	Phone             string   `json:"phone"`
	VehicleModel      string   `json:"vehicle_model"`
	VehiclePlate      string   `json:"vehicle_plate"`
	AccessCode        string   `json:"access_code,omitempty"`
	CommissionPercent *float64 `json:"commission_percent,omitempty"`
	Salaried          bool     `json:"salaried"`
}

// AccessLoginRequest is the payload for access-code login. Exactly one of
// prestataire_id or driver_id identifies who is logging in.
type AccessLoginRequest struct {
	PrestataireID string `json:"prestataire_id,omitempty"`
	DriverID      string `json:"driver_id,omitempty"`
	AccessCode    string `json:"access_code"`
}

// AuthResponse carries an issued JWT
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Role      string `json:"role"`
}

// DriverPosition is a live driver location report used for dispatch tracking
type DriverPosition struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NearbyDriver is a dispatch tracking result with the distance to the query point
type NearbyDriver struct {
	DriverID   string  `json:"driver_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}
