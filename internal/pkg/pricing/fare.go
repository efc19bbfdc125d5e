package pricing

import (
	"math"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// NormalizeDistanceKm converts a route distance to kilometers. Historical
// orders store the distance in meters or kilometers depending on which
// client build created them, so values of 1000 and above are treated as
// meters.
// TODO: record the unit explicitly at order creation and drop this shim
// once all mobile builds older than 2.3 are retired.
func NormalizeDistanceKm(distance float64) float64 {
	if distance >= 1000 {
		return distance / 1000
	}
	return distance
}

// DistanceFare computes the distance component of a fare in XPF
func DistanceFare(distance float64, pricePerKm int) (int, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, invalidf("distance is not finite")
	}
	if distance < 0 {
		return 0, invalidf("distance is negative: %f", distance)
	}
	if pricePerKm < 0 {
		return 0, invalidf("price per km is negative: %d", pricePerKm)
	}
	km := NormalizeDistanceKm(distance)
	return int(math.Round(km * float64(pricePerKm))), nil
}

// WaitingFare computes the waiting-time component of a fare. The first
// cfg.FreeWaitingMinutes minutes are free; each minute above that is
// billed at cfg.WaitingRatePerMinute XPF. A nil waiting time means no
// waiting was recorded and costs nothing.
func WaitingFare(waitingMinutes *int, cfg models.FareConfig) int {
	if waitingMinutes == nil {
		return 0
	}
	billable := *waitingMinutes - cfg.FreeWaitingMinutes
	if billable <= 0 {
		return 0
	}
	return billable * cfg.WaitingRatePerMinute
}

// SupplementsTotal sums the itemized supplements of an order. The kind tag
// (fixed vs auto) only matters for display; both count the same here.
func SupplementsTotal(supplements []models.Supplement) int {
	total := 0
	for _, s := range supplements {
		qty := s.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += s.UnitPrice * qty
	}
	return total
}

// ConfirmationSupplementsTotal sums only the supplements that were part of
// the confirmed price, ignoring the ones accrued on the road.
func ConfirmationSupplementsTotal(supplements []models.Supplement) int {
	total := 0
	for _, s := range supplements {
		if s.PostConfirmation {
			continue
		}
		qty := s.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += s.UnitPrice * qty
	}
	return total
}
