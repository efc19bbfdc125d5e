package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapea/backoffice/internal/pkg/models"
)

var testFareCfg = models.FareConfig{
	FreeWaitingMinutes:   5,
	WaitingRatePerMinute: 42,
}

func intPtr(v int) *int { return &v }

func TestSplitServiceFee(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		percent      float64
		wantSubtotal int
		wantFee      int
	}{
		{"standard 15 percent", 11500, 15, 10000, 1500},
		{"zero percent", 11500, 0, 11500, 0},
		{"zero total", 0, 15, 0, 0},
		{"small total rounds", 100, 15, 87, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, fee, err := SplitServiceFee(tt.total, tt.percent)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubtotal, subtotal)
			assert.Equal(t, tt.wantFee, fee)
		})
	}
}

func TestSplitServiceFee_SumIsExact(t *testing.T) {
	// The subtotal and the fee must recompose the total exactly for any
	// total and any fee percentage, regardless of rounding.
	for _, percent := range []float64{0, 5, 7.5, 10, 15, 20, 33, 99} {
		for total := 0; total <= 20000; total += 137 {
			subtotal, fee, err := SplitServiceFee(total, percent)
			require.NoError(t, err)
			assert.Equal(t, total, subtotal+fee,
				"total=%d percent=%f", total, percent)
			assert.GreaterOrEqual(t, fee, 0)
		}
	}
}

func TestSplitServiceFee_Invalid(t *testing.T) {
	_, _, err := SplitServiceFee(-1, 15)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, _, err = SplitServiceFee(1000, -5)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, _, err = SplitServiceFee(1000, 100)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestSplitCommission(t *testing.T) {
	// subtotal=10000 at 95% driver share
	split, err := SplitCommission(11500, 1500, 11500, 0, 95)
	require.NoError(t, err)

	assert.Equal(t, 0, split.SupplementaryCommission)
	assert.Equal(t, 10000, split.Subtotal)
	assert.Equal(t, 9500, split.DriverEarnings)
	assert.Equal(t, 500, split.PrestataireEarnings)
	assert.Equal(t, 1500, split.PlatformTotal)
}

func TestSplitCommission_WithSupplementaryCommission(t *testing.T) {
	// 2% supplementary commission on the confirmation total
	split, err := SplitCommission(11500, 1500, 11500, 2, 95)
	require.NoError(t, err)

	assert.Equal(t, 230, split.SupplementaryCommission)
	assert.Equal(t, 9770, split.Subtotal)
	assert.Equal(t, 1730, split.PlatformTotal)
	assert.Equal(t, 11500, split.DriverEarnings+split.PrestataireEarnings+split.PlatformTotal)
}

func TestSplitCommission_SumIsExact(t *testing.T) {
	// No rounding leakage: driver + prestataire + platform == total price,
	// exactly, for any combination of percentages.
	for _, suppPercent := range []float64{0, 1, 2.5, 7, 13} {
		for _, driverPercent := range []float64{0, 33.3, 50, 80, 95, 100} {
			for total := 0; total <= 30000; total += 211 {
				subtotal, fee, err := SplitServiceFee(total, 15)
				require.NoError(t, err)
				_ = subtotal

				split, err := SplitCommission(total, fee, total, suppPercent, driverPercent)
				require.NoError(t, err)

				sum := split.DriverEarnings + split.PrestataireEarnings + split.PlatformTotal
				assert.Equal(t, total, sum,
					"total=%d supp=%f driver=%f", total, suppPercent, driverPercent)
			}
		}
	}
}

func TestSplitCommission_Invalid(t *testing.T) {
	_, err := SplitCommission(-1, 0, 0, 0, 95)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = SplitCommission(1000, 1500, 1000, 0, 95)
	assert.ErrorIs(t, err, ErrInvalidOrder, "fee above total must be rejected")

	_, err = SplitCommission(1000, 0, 1000, 0, 101)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	// Supplementary commission pushing the subtotal negative
	_, err = SplitCommission(1000, 900, 10000, 50, 95)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestWaitingFare(t *testing.T) {
	tests := []struct {
		name    string
		minutes *int
		want    int
	}{
		{"nil waiting time", nil, 0},
		{"zero minutes", intPtr(0), 0},
		{"below free threshold", intPtr(3), 0},
		{"exactly free threshold", intPtr(5), 0},
		{"one minute above threshold", intPtr(6), 42},
		{"twelve minutes", intPtr(12), 294},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WaitingFare(tt.minutes, testFareCfg))
		})
	}
}

func TestDistanceFare(t *testing.T) {
	// Value below 1000 is already kilometers
	fare, err := DistanceFare(12.5, 120)
	require.NoError(t, err)
	assert.Equal(t, 1500, fare)

	// Value of 1000 and above is meters
	fare, err = DistanceFare(12500, 120)
	require.NoError(t, err)
	assert.Equal(t, 1500, fare)

	fare, err = DistanceFare(0, 120)
	require.NoError(t, err)
	assert.Equal(t, 0, fare)
}

func TestDistanceFare_Invalid(t *testing.T) {
	_, err := DistanceFare(-1, 120)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = DistanceFare(10, -5)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestSupplementsTotal(t *testing.T) {
	supplements := []models.Supplement{
		{Name: "Bagage volumineux", UnitPrice: 200, Quantity: 2},
		{Name: "Siège enfant", UnitPrice: 500, Quantity: 1},
		{Name: "Quantité manquante", UnitPrice: 100}, // quantity defaults to 1
	}
	assert.Equal(t, 1000, SupplementsTotal(supplements))
	assert.Equal(t, 0, SupplementsTotal(nil))
}

func TestConfirmationSupplementsTotal_SkipsOnRoadSupplements(t *testing.T) {
	supplements := []models.Supplement{
		{Name: "Bagage volumineux", UnitPrice: 200, Quantity: 2},
		{Name: "Arrêt supplémentaire", UnitPrice: 500, Quantity: 1, PostConfirmation: true},
	}
	assert.Equal(t, 400, ConfirmationSupplementsTotal(supplements))
	assert.Equal(t, 900, SupplementsTotal(supplements))
}

func testOrder() *models.Order {
	return &models.Order{
		ID:                uuid.New(),
		Status:            models.OrderStatusPaymentConfirmed,
		RideOption:        models.RideOption{BaseFare: 1000, PricePerKm: 120},
		Route:             models.RouteInfo{Distance: 10},
		ConfirmationTotal: 11500,
		TotalPrice:        11794, // confirmation + 294 waiting
		WaitingMinutes:    intPtr(12),
	}
}

func TestComputeBreakdown(t *testing.T) {
	feeCfg := &models.FeeConfig{ServiceFeePercent: 15, SupplementaryCommissionPercent: 0}
	driver := &models.Driver{CommissionPercent: 95}

	bd, err := ComputeBreakdown(testOrder(), driver, feeCfg, testFareCfg)
	require.NoError(t, err)

	assert.Equal(t, 1000, bd.BaseFare)
	assert.Equal(t, 1200, bd.DistanceFare)
	assert.Equal(t, 294, bd.WaitingFare)
	assert.Equal(t, 10000, bd.PreFeeSubtotal)
	assert.Equal(t, 1500, bd.ServiceFee)
	assert.Equal(t, 0, bd.SupplementaryCommission)

	// The service fee is charged on the confirmation price, not on the
	// waiting time accrued afterwards.
	assert.Equal(t, 11794-1500, bd.DriverEarnings+bd.PrestataireEarnings)
	assert.Equal(t, bd.TotalPrice, bd.DriverEarnings+bd.PrestataireEarnings+bd.PlatformTotal)

	// Majoration recovers the non-itemized part of the confirmed price
	assert.Equal(t, 11500-1000-1200, bd.Majoration)
}

func TestComputeBreakdown_OnRoadSupplementKeepsMajoration(t *testing.T) {
	feeCfg := &models.FeeConfig{ServiceFeePercent: 15}

	base := testOrder()
	bd, err := ComputeBreakdown(base, nil, feeCfg, testFareCfg)
	require.NoError(t, err)

	// The same ride with an extra stop added on the road. The confirmed
	// price never contained that supplement, so the non-itemized part of
	// the confirmed price is unchanged.
	withStop := testOrder()
	withStop.Supplements = []models.Supplement{
		{Name: "Arrêt supplémentaire", UnitPrice: 500, Quantity: 1, PostConfirmation: true},
	}
	withStop.TotalPrice += 500

	bd2, err := ComputeBreakdown(withStop, nil, feeCfg, testFareCfg)
	require.NoError(t, err)
	assert.Equal(t, bd.Majoration, bd2.Majoration)
	assert.Equal(t, bd.ServiceFee, bd2.ServiceFee)

	// A booking-time supplement does reduce it: it was itemized inside
	// the confirmed price.
	itemized := testOrder()
	itemized.Supplements = []models.Supplement{
		{Name: "Bagage volumineux", UnitPrice: 500, Quantity: 1},
	}
	bd3, err := ComputeBreakdown(itemized, nil, feeCfg, testFareCfg)
	require.NoError(t, err)
	assert.Equal(t, bd.Majoration-500, bd3.Majoration)
}

func TestComputeBreakdown_SalariedDriver(t *testing.T) {
	order := testOrder()
	order.DriverEarnings = intPtr(8200)
	driver := &models.Driver{Salaried: true}
	feeCfg := &models.FeeConfig{ServiceFeePercent: 15}

	bd, err := ComputeBreakdown(order, driver, feeCfg, testFareCfg)
	require.NoError(t, err)

	assert.True(t, bd.Salaried)
	assert.Equal(t, 0, bd.ServiceFee)
	assert.Equal(t, 0, bd.SupplementaryCommission)
	assert.Equal(t, 0, bd.PlatformTotal)
	assert.Equal(t, 8200, bd.DriverEarnings)
}

func TestComputeBreakdown_SalariedWithoutStoredEarnings(t *testing.T) {
	order := testOrder()
	driver := &models.Driver{Salaried: true}

	_, err := ComputeBreakdown(order, driver, &models.FeeConfig{}, testFareCfg)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestComputeBreakdown_MissingConfig(t *testing.T) {
	_, err := ComputeBreakdown(testOrder(), nil, nil, testFareCfg)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestComputeBreakdown_NoDriverUsesDefaultPercent(t *testing.T) {
	feeCfg := &models.FeeConfig{ServiceFeePercent: 15}

	bd, err := ComputeBreakdown(testOrder(), nil, feeCfg, testFareCfg)
	require.NoError(t, err)

	// 95% of the 10294 subtotal
	assert.Equal(t, 9779, bd.DriverEarnings)
	assert.Equal(t, 515, bd.PrestataireEarnings)
}

func TestNormalizeDistanceKm(t *testing.T) {
	assert.Equal(t, 12.5, NormalizeDistanceKm(12.5))
	assert.Equal(t, 999.0, NormalizeDistanceKm(999))
	assert.Equal(t, 1.0, NormalizeDistanceKm(1000))
	assert.Equal(t, 12.5, NormalizeDistanceKm(12500))
}
