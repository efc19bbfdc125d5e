package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/billing"
	"github.com/tapea/backoffice/services/billing/mocks"
)

func newTestUC(t *testing.T) (billing.BillingUC, *mocks.MockBillingRepo, *mocks.MockBillingGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)

	uc, err := NewBillingUC(&models.Config{}, mockRepo, mockGW)
	require.NoError(t, err)
	return uc, mockRepo, mockGW
}

func TestGetFeeConfig_CacheHit(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	cached := &models.FeeConfig{ServiceFeePercent: 15}
	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(cached, nil)

	cfg, err := uc.GetFeeConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.ServiceFeePercent)
}

func TestGetFeeConfig_CacheMissReadsPostgres(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	stored := &models.FeeConfig{ServiceFeePercent: 12}
	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().GetFeeConfig(gomock.Any()).Return(stored, nil)
	mockRepo.EXPECT().CacheFeeConfig(gomock.Any(), stored).Return(nil)

	cfg, err := uc.GetFeeConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.ServiceFeePercent)
}

func TestGetFeeConfig_MissingIsAnError(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().GetFeeConfig(gomock.Any()).Return(nil, billing.ErrFeeConfigNotFound)

	_, err := uc.GetFeeConfig(context.Background())
	assert.ErrorIs(t, err, billing.ErrFeeConfigNotFound)
}

func TestUpdateFeeConfig_InvalidatesCache(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	existing := &models.FeeConfig{ID: uuid.New(), ServiceFeePercent: 15}
	mockRepo.EXPECT().GetFeeConfig(gomock.Any()).Return(existing, nil)
	mockRepo.EXPECT().UpsertFeeConfig(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().InvalidateFeeConfig(gomock.Any()).Return(nil)

	pct := 18.0
	cfg, err := uc.UpdateFeeConfig(context.Background(), &models.FeeConfigUpdateRequest{
		ServiceFeePercent: &pct,
	})
	require.NoError(t, err)
	assert.Equal(t, 18.0, cfg.ServiceFeePercent)
}

func TestUpdateFeeConfig_RejectsOutOfRangePercent(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	existing := &models.FeeConfig{ID: uuid.New(), ServiceFeePercent: 15}
	mockRepo.EXPECT().GetFeeConfig(gomock.Any()).Return(existing, nil).AnyTimes()

	for _, pct := range []float64{-1, 100, 150} {
		p := pct
		_, err := uc.UpdateFeeConfig(context.Background(), &models.FeeConfigUpdateRequest{
			ServiceFeePercent: &p,
		})
		assert.ErrorIs(t, err, billing.ErrValidation, "percent %v", pct)
	}
}

func paidOrder(prestataireID, driverID *uuid.UUID, confirmationTotal, totalPrice int, paidAt time.Time) *models.Order {
	return &models.Order{
		ID:                uuid.New(),
		ClientID:          uuid.New(),
		PrestataireID:     prestataireID,
		DriverID:          driverID,
		Status:            models.OrderStatusPaymentConfirmed,
		ConfirmationTotal: confirmationTotal,
		TotalPrice:        totalPrice,
		PaidAt:            &paidAt,
	}
}

func TestRecompute_GroupsByPrestataire(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	prestataireID := uuid.New()
	paidAt := time.Date(2026, time.July, 10, 8, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Order{
			paidOrder(&prestataireID, nil, 11500, 11794, paidAt),
			paidOrder(&prestataireID, nil, 2300, 2300, paidAt),
		}, nil)
	mockRepo.EXPECT().
		UpsertCollecte(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Collecte) (*models.Collecte, error) {
			return e, nil
		})
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, 2, result.OrdersIncluded)
	assert.Empty(t, result.OrdersExcluded)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	// 11500 @ 15% -> fee 1500; 2300 @ 15% -> subtotal 2000, fee 300
	assert.Equal(t, 1800, entry.ServiceFeeTotal)
	assert.Equal(t, 1800, entry.AmountDue)
	assert.Equal(t, 2, entry.OrderCount)
	require.NotNil(t, entry.PrestataireID)
	assert.Equal(t, prestataireID, *entry.PrestataireID)
	assert.Len(t, entry.OrderIDs, 2)
}

func TestRecompute_IndependentDriverBilledDirectly(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	driverID := uuid.New()
	paidAt := time.Date(2026, time.July, 3, 18, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent:              15,
		SupplementaryCommissionPercent: 2,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Order{
			paidOrder(nil, &driverID, 10000, 10000, paidAt),
		}, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:                driverID,
		CommissionPercent: 95,
	}, nil)
	mockRepo.EXPECT().
		UpsertCollecte(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Collecte) (*models.Collecte, error) {
			return e, nil
		})
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Nil(t, entry.PrestataireID)
	require.NotNil(t, entry.DriverID)
	assert.Equal(t, driverID, *entry.DriverID)
	// 10000 incl. 15% fee -> subtotal 8696, fee 1304; supplementary 2% of 10000 = 200
	assert.Equal(t, 1304, entry.ServiceFeeTotal)
	assert.Equal(t, 200, entry.SupplementaryCommissionTotal)
	assert.Equal(t, 1504, entry.AmountDue)
}

func TestRecompute_SalariedRidesSkipped(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	driverID := uuid.New()
	paidAt := time.Date(2026, time.July, 3, 18, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Order{
			paidOrder(nil, &driverID, 9000, 9000, paidAt),
		}, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:       driverID,
		Salaried: true,
	}, nil)
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Equal(t, 0, result.OrdersIncluded)
	assert.Empty(t, result.OrdersExcluded)
}

func TestRecompute_InvalidOrdersExcludedNotZeroed(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	prestataireID := uuid.New()
	paidAt := time.Date(2026, time.July, 14, 9, 0, 0, 0, time.UTC)

	bad := paidOrder(&prestataireID, nil, -500, -500, paidAt)
	good := paidOrder(&prestataireID, nil, 11500, 11500, paidAt)
	orphan := paidOrder(nil, nil, 4000, 4000, paidAt)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Order{bad, good, orphan}, nil)
	mockRepo.EXPECT().
		UpsertCollecte(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Collecte) (*models.Collecte, error) {
			return e, nil
		})
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, 1, result.OrdersIncluded)
	require.Len(t, result.OrdersExcluded, 2)
	excludedIDs := []uuid.UUID{result.OrdersExcluded[0].OrderID, result.OrdersExcluded[1].OrderID}
	assert.Contains(t, excludedIDs, bad.ID)
	assert.Contains(t, excludedIDs, orphan.ID)

	// The good order still produced a correct ledger row
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 1500, result.Entries[0].AmountDue)
}

func TestRecompute_SecondPassYieldsSameLedger(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	prestataireID := uuid.New()
	paidAt := time.Date(2026, time.July, 10, 8, 0, 0, 0, time.UTC)
	settled := []*models.Order{
		paidOrder(&prestataireID, nil, 11500, 11794, paidAt),
		paidOrder(&prestataireID, nil, 2300, 2300, paidAt),
	}

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil).Times(2)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(settled, nil).
		Times(2)

	var upserted []*models.Collecte
	mockRepo.EXPECT().
		UpsertCollecte(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Collecte) (*models.Collecte, error) {
			upserted = append(upserted, e)
			return e, nil
		}).
		Times(2)
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)
	_, err = uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)

	// Each pass hands the repo absolute totals built from scratch, so
	// re-running over the same orders writes the same ledger row instead
	// of stacking amounts on top of the previous run.
	require.Len(t, upserted, 2)
	assert.Equal(t, upserted[0].AmountDue, upserted[1].AmountDue)
	assert.Equal(t, upserted[0].ServiceFeeTotal, upserted[1].ServiceFeeTotal)
	assert.Equal(t, upserted[0].OrderCount, upserted[1].OrderCount)
	assert.Equal(t, 1800, upserted[1].AmountDue)
	assert.Equal(t, 2, upserted[1].OrderCount)
}

func TestRecompute_MissingDriverExcludesOnlyThatOrder(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	prestataireID := uuid.New()
	ghostDriverID := uuid.New()
	paidAt := time.Date(2026, time.July, 14, 9, 0, 0, 0, time.UTC)

	dangling := paidOrder(nil, &ghostDriverID, 6000, 6000, paidAt)
	good := paidOrder(&prestataireID, nil, 11500, 11500, paidAt)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Order{dangling, good}, nil)
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), ghostDriverID).
		Return(nil, billing.ErrDriverNotFound)
	mockRepo.EXPECT().
		UpsertCollecte(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Collecte) (*models.Collecte, error) {
			return e, nil
		})
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Recompute(context.Background(), 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, 1, result.OrdersIncluded)
	require.Len(t, result.OrdersExcluded, 1)
	assert.Equal(t, dangling.ID, result.OrdersExcluded[0].OrderID)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 1500, result.Entries[0].AmountDue)
}

func TestRecompute_DriverLookupFailureAborts(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	prestataireID := uuid.New()
	driverID := uuid.New()
	paidAt := time.Date(2026, time.July, 14, 9, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Order{
			paidOrder(nil, &driverID, 6000, 6000, paidAt),
			paidOrder(&prestataireID, nil, 11500, 11500, paidAt),
		}, nil)
	// The driver row exists but the lookup fails. Persisting a ledger
	// without that order would understate the amount due, so nothing is
	// written at all.
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(nil, errors.New("connection reset by peer"))

	_, err := uc.Recompute(context.Background(), 2026, time.July)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, billing.ErrValidation)
}

func TestMarkPaid_PartialThenFull(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().GetCollecte(gomock.Any(), id).Return(&models.Collecte{
		ID:        id,
		AmountDue: 5000,
	}, nil)
	mockRepo.EXPECT().UpdateCollectePayment(gomock.Any(), gomock.Any()).Return(nil)

	amount := 2000
	entry, err := uc.MarkPaid(context.Background(), id, &models.MarkPaidRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 2000, entry.AmountPaid)
	assert.False(t, entry.IsPaid)
	assert.Nil(t, entry.PaidAt)
	assert.Equal(t, models.CollecteStatusPartial, entry.Status())
	assert.Equal(t, 3000, entry.Outstanding())

	// Second payment settles the row
	mockRepo.EXPECT().GetCollecte(gomock.Any(), id).Return(&models.Collecte{
		ID:         id,
		AmountDue:  5000,
		AmountPaid: 2000,
	}, nil)
	mockRepo.EXPECT().UpdateCollectePayment(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishCollectePaid(gomock.Any(), gomock.Any()).Return(nil)

	amount = 3000
	entry, err = uc.MarkPaid(context.Background(), id, &models.MarkPaidRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, entry.IsPaid)
	require.NotNil(t, entry.PaidAt)
	assert.Equal(t, models.CollecteStatusPaid, entry.Status())
	assert.Equal(t, 0, entry.Outstanding())
}

func TestMarkPaid_FullSettlement(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().GetCollecte(gomock.Any(), id).Return(&models.Collecte{
		ID:        id,
		AmountDue: 7500,
	}, nil)
	mockRepo.EXPECT().UpdateCollectePayment(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishCollectePaid(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := uc.MarkPaid(context.Background(), id, &models.MarkPaidRequest{Full: true})
	require.NoError(t, err)
	assert.Equal(t, 7500, entry.AmountPaid)
	assert.True(t, entry.IsPaid)
}

func TestMarkPaid_AlreadySettled(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().GetCollecte(gomock.Any(), id).Return(&models.Collecte{
		ID:         id,
		AmountDue:  5000,
		AmountPaid: 5000,
		IsPaid:     true,
	}, nil)

	_, err := uc.MarkPaid(context.Background(), id, &models.MarkPaidRequest{Full: true})
	assert.ErrorIs(t, err, billing.ErrAlreadyPaid)
}

func TestMarkPaid_RejectsNonPositiveAmount(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().GetCollecte(gomock.Any(), id).Return(&models.Collecte{
		ID:        id,
		AmountDue: 5000,
	}, nil).AnyTimes()

	zero := 0
	_, err := uc.MarkPaid(context.Background(), id, &models.MarkPaidRequest{Amount: &zero})
	assert.ErrorIs(t, err, billing.ErrValidation)

	_, err = uc.MarkPaid(context.Background(), id, &models.MarkPaidRequest{})
	assert.ErrorIs(t, err, billing.ErrValidation)
}

func TestHandlePaymentConfirmed_RecomputesPeriod(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	paidAt := time.Date(2026, time.August, 20, 11, 30, 0, 0, time.UTC)
	from, to := models.PeriodBounds(2026, time.August)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), from, to).
		Return(nil, nil)
	mockGW.EXPECT().PublishCollecteRecomputed(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.HandlePaymentConfirmed(context.Background(), &models.PaymentConfirmedEvent{
		OrderID: uuid.New(),
		PaidAt:  paidAt,
	})
	require.NoError(t, err)
}

func TestRecompute_RepoFailurePropagates(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().GetCachedFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockRepo.EXPECT().
		ListPaymentConfirmedOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := uc.Recompute(context.Background(), 2026, time.July)
	assert.Error(t, err)
}
