package pricing

import (
	"math"
)

// CommissionSplit is the exact decomposition of an order total between the
// driver, the prestataire and the platform.
type CommissionSplit struct {
	SupplementaryCommission int
	Subtotal                int
	DriverEarnings          int
	PrestataireEarnings     int
	PlatformTotal           int
}

func validPercent(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}

// SplitServiceFee back-computes the pre-fee subtotal and the platform
// service fee from a fee-inclusive confirmation total. The stored
// confirmation price already includes the fee, so the subtotal is derived
// by division rather than computed forward:
//
//	preFeeSubtotal = round(confirmationTotal / (1 + feePercent/100))
//	serviceFee     = confirmationTotal - preFeeSubtotal
//
// The fee applies to the confirmation price only; waiting time and stops
// accrued after confirmation are never fee-bearing.
func SplitServiceFee(confirmationTotal int, feePercent float64) (preFeeSubtotal, serviceFee int, err error) {
	if confirmationTotal < 0 {
		return 0, 0, invalidf("confirmation total is negative: %d", confirmationTotal)
	}
	if !validPercent(feePercent) || feePercent >= 100 {
		return 0, 0, invalidf("service fee percent out of range: %f", feePercent)
	}
	if feePercent == 0 {
		return confirmationTotal, 0, nil
	}
	preFeeSubtotal = int(math.Round(float64(confirmationTotal) / (1 + feePercent/100)))
	return preFeeSubtotal, confirmationTotal - preFeeSubtotal, nil
}

// SplitCommission applies the supplementary platform commission to the
// confirmation total, then splits what remains of the final price between
// the driver and the prestataire. Only the supplementary commission and the
// driver share are rounded independently; the prestataire share and the
// platform total are remainders, so the parts always sum back to
// totalPrice exactly.
func SplitCommission(totalPrice, serviceFee, confirmationTotal int, supplementaryPercent, driverPercent float64) (CommissionSplit, error) {
	if totalPrice < 0 {
		return CommissionSplit{}, invalidf("total price is negative: %d", totalPrice)
	}
	if serviceFee < 0 || serviceFee > totalPrice {
		return CommissionSplit{}, invalidf("service fee %d out of range for total %d", serviceFee, totalPrice)
	}
	if confirmationTotal < 0 {
		return CommissionSplit{}, invalidf("confirmation total is negative: %d", confirmationTotal)
	}
	if !validPercent(supplementaryPercent) || supplementaryPercent >= 100 {
		return CommissionSplit{}, invalidf("supplementary commission percent out of range: %f", supplementaryPercent)
	}
	if !validPercent(driverPercent) || driverPercent > 100 {
		return CommissionSplit{}, invalidf("driver commission percent out of range: %f", driverPercent)
	}

	supplementary := int(math.Round(float64(confirmationTotal) * supplementaryPercent / 100))
	subtotal := totalPrice - serviceFee - supplementary
	if subtotal < 0 {
		return CommissionSplit{}, invalidf("fees %d exceed total price %d", serviceFee+supplementary, totalPrice)
	}

	driver := int(math.Round(float64(subtotal) * driverPercent / 100))

	return CommissionSplit{
		SupplementaryCommission: supplementary,
		Subtotal:                subtotal,
		DriverEarnings:          driver,
		PrestataireEarnings:     subtotal - driver,
		PlatformTotal:           serviceFee + supplementary,
	}, nil
}
