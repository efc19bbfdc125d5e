package pricing

import (
	"github.com/tapea/backoffice/internal/pkg/models"
)

// ComputeBreakdown produces the full earnings decomposition of one order.
// The fee configuration is passed explicitly; there is no ambient state.
// driver may be nil when the order has no assigned driver yet, in which
// case the default driver commission percentage applies.
//
// Salaried platform drivers bypass the fee split entirely: no service fee,
// no supplementary commission, earnings taken from the order's stored
// amount.
func ComputeBreakdown(order *models.Order, driver *models.Driver, feeCfg *models.FeeConfig, fareCfg models.FareConfig) (*models.FareBreakdown, error) {
	if order == nil {
		return nil, invalidf("order is nil")
	}
	if feeCfg == nil {
		return nil, ErrMissingConfig
	}
	if order.TotalPrice < 0 {
		return nil, invalidf("total price is negative: %d", order.TotalPrice)
	}
	if order.ConfirmationTotal < 0 {
		return nil, invalidf("confirmation total is negative: %d", order.ConfirmationTotal)
	}

	distanceFare, err := DistanceFare(order.Route.Distance, order.RideOption.PricePerKm)
	if err != nil {
		return nil, err
	}
	waitingFare := WaitingFare(order.WaitingMinutes, fareCfg)
	supplementsTotal := SupplementsTotal(order.Supplements)

	bd := &models.FareBreakdown{
		OrderID:          order.ID,
		BaseFare:         order.RideOption.BaseFare,
		DistanceFare:     distanceFare,
		WaitingFare:      waitingFare,
		SupplementsTotal: supplementsTotal,
		TotalPrice:       order.TotalPrice,
	}

	// Majoration recovers uplifts folded into the confirmed price without
	// being itemized (passenger count, altitude). Display only. Supplements
	// added after confirmation never counted toward the confirmed price, so
	// they must not be subtracted from it.
	if m := order.ConfirmationTotal - bd.BaseFare - distanceFare - ConfirmationSupplementsTotal(order.Supplements); m > 0 {
		bd.Majoration = m
	}

	if driver != nil && driver.Salaried {
		if order.DriverEarnings == nil {
			return nil, invalidf("salaried ride %s has no stored driver earnings", order.ID)
		}
		bd.Salaried = true
		bd.PreFeeSubtotal = order.TotalPrice
		bd.DriverEarnings = *order.DriverEarnings
		return bd, nil
	}

	subtotal, serviceFee, err := SplitServiceFee(order.ConfirmationTotal, feeCfg.ServiceFeePercent)
	if err != nil {
		return nil, err
	}

	driverPercent := models.DefaultDriverCommissionPercent
	if driver != nil {
		driverPercent = driver.CommissionPercent
	}

	split, err := SplitCommission(order.TotalPrice, serviceFee, order.ConfirmationTotal,
		feeCfg.SupplementaryCommissionPercent, driverPercent)
	if err != nil {
		return nil, err
	}

	bd.PreFeeSubtotal = subtotal
	bd.ServiceFee = serviceFee
	bd.SupplementaryCommission = split.SupplementaryCommission
	bd.DriverEarnings = split.DriverEarnings
	bd.PrestataireEarnings = split.PrestataireEarnings
	bd.PlatformTotal = split.PlatformTotal
	return bd, nil
}
