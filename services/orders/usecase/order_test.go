package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/orders"
	"github.com/tapea/backoffice/services/orders/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Fare: models.FareConfig{
			FreeWaitingMinutes:   5,
			WaitingRatePerMinute: 42,
		},
	}
}

func newTestUC(t *testing.T) (orders.OrderUC, *mocks.MockOrderRepo, *mocks.MockOrderGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)

	uc, err := NewOrderUC(testConfig(), mockRepo, mockGW)
	require.NoError(t, err)
	return uc, mockRepo, mockGW
}

func TestCreateOrder_LocksConfirmationPrice(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	var stored *models.Order
	mockRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.Order) error {
			stored = o
			return nil
		})
	mockGW.EXPECT().PublishOrderCreated(gomock.Any(), gomock.Any()).Return(nil)

	price := 500
	req := &models.OrderCreateRequest{
		ClientID:      uuid.New().String(),
		PaymentMethod: models.PaymentMethodCash,
		RideOption:    models.RideOption{Name: "standard", BaseFare: 1000, PricePerKm: 150},
		Route:         models.RouteInfo{Distance: 12, PickupAddress: "Papeete", DropoffAddress: "Punaauia"},
		Supplements: []models.SupplementItem{
			{Name: "bagages", UnitPrice: &price, Quantity: 2},
		},
	}

	order, err := uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// base 1000 + 12km * 150 + 2 * 500
	assert.Equal(t, 3800, order.ConfirmationTotal)
	assert.Equal(t, order.ConfirmationTotal, order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Supplements, 1)
}

func TestCreateOrder_ClientLockedPriceWins(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOrderCreated(gomock.Any(), gomock.Any()).Return(nil)

	locked := 4200
	req := &models.OrderCreateRequest{
		ClientID:          uuid.New().String(),
		PaymentMethod:     models.PaymentMethodCard,
		RideOption:        models.RideOption{BaseFare: 1000, PricePerKm: 150},
		Route:             models.RouteInfo{Distance: 12},
		ConfirmationTotal: &locked,
	}

	order, err := uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4200, order.ConfirmationTotal)
}

func TestCreateOrder_LegacySupplementFields(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOrderCreated(gomock.Any(), gomock.Any()).Return(nil)

	prix := 300
	req := &models.OrderCreateRequest{
		ClientID:      uuid.New().String(),
		PaymentMethod: models.PaymentMethodCash,
		RideOption:    models.RideOption{BaseFare: 1000},
		Supplements: []models.SupplementItem{
			{LegacyName: "siège bébé", LegacyPrix: &prix},
		},
	}

	order, err := uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, order.Supplements, 1)
	assert.Equal(t, "siège bébé", order.Supplements[0].Name)
	assert.Equal(t, 300, order.Supplements[0].UnitPrice)
	assert.Equal(t, 1, order.Supplements[0].Quantity)
	assert.Equal(t, 1300, order.ConfirmationTotal)
}

func TestCreateOrder_InvalidPayload(t *testing.T) {
	uc, _, _ := newTestUC(t)

	tests := []struct {
		name string
		req  *models.OrderCreateRequest
	}{
		{
			name: "bad client id",
			req: &models.OrderCreateRequest{
				ClientID:      "not-a-uuid",
				PaymentMethod: models.PaymentMethodCash,
			},
		},
		{
			name: "unknown payment method",
			req: &models.OrderCreateRequest{
				ClientID:      uuid.New().String(),
				PaymentMethod: "check",
			},
		},
		{
			name: "negative tariff",
			req: &models.OrderCreateRequest{
				ClientID:      uuid.New().String(),
				PaymentMethod: models.PaymentMethodCash,
				RideOption:    models.RideOption{BaseFare: -100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateOrder(context.Background(), tt.req)
			assert.ErrorIs(t, err, orders.ErrValidation)
		})
	}
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	driverID := uuid.New()
	prestataireID := uuid.New()

	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:                orderID,
		Status:            models.OrderStatusPending,
		ConfirmationTotal: 5000,
	}, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:            driverID,
		PrestataireID: &prestataireID,
	}, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.OrderStatusPending).Return(nil)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	order, err := uc.UpdateStatus(context.Background(), orderID, &models.OrderStatusUpdateRequest{
		Status:   models.OrderStatusAccepted,
		DriverID: driverID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, order.Status)
	require.NotNil(t, order.DriverID)
	assert.Equal(t, driverID, *order.DriverID)
	// Prestataire inherited from the assigned driver
	require.NotNil(t, order.PrestataireID)
	assert.Equal(t, prestataireID, *order.PrestataireID)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:     orderID,
		Status: models.OrderStatusPending,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), orderID, &models.OrderStatusUpdateRequest{
		Status: models.OrderStatusCompleted,
	})
	assert.ErrorIs(t, err, orders.ErrInvalidTransition)
}

func TestUpdateStatus_CancelAfterStartRejected(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:     orderID,
		Status: models.OrderStatusInProgress,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), orderID, &models.OrderStatusUpdateRequest{
		Status: models.OrderStatusCancelled,
	})
	assert.ErrorIs(t, err, orders.ErrInvalidTransition)
}

func TestUpdateStatus_AcceptRequiresDriver(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:     orderID,
		Status: models.OrderStatusPending,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), orderID, &models.OrderStatusUpdateRequest{
		Status: models.OrderStatusAccepted,
	})
	assert.ErrorIs(t, err, orders.ErrDriverRequired)
}

func TestUpdateStatus_SalariedDriverEarningsLocked(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	driverID := uuid.New()

	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:                orderID,
		Status:            models.OrderStatusPending,
		ConfirmationTotal: 10000,
	}, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:       driverID,
		Salaried: true,
	}, nil)
	mockGW.EXPECT().GetFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent:         15,
		SalariedCommissionPercent: 30,
	}, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.OrderStatusPending).Return(nil)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	order, err := uc.UpdateStatus(context.Background(), orderID, &models.OrderStatusUpdateRequest{
		Status:   models.OrderStatusAccepted,
		DriverID: driverID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, order.DriverEarnings)
	assert.Equal(t, 3000, *order.DriverEarnings)
}

func TestCompleteOrder_AddsWaitingAndSupplements(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:                orderID,
		Status:            models.OrderStatusInProgress,
		ConfirmationTotal: 10000,
		TotalPrice:        10000,
	}, nil)

	price := 200
	var savedExtras []models.Supplement
	mockRepo.EXPECT().
		CompleteOrder(gomock.Any(), gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ *models.Order, extras []models.Supplement) error {
			savedExtras = extras
			return nil
		})
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	waiting := 12
	order, err := uc.CompleteOrder(context.Background(), orderID, &models.OrderCompleteRequest{
		WaitingMinutes: &waiting,
		Supplements: []models.SupplementItem{
			{Name: "arrêt supplémentaire", UnitPrice: &price},
		},
	})
	require.NoError(t, err)

	// 12 minutes waited, 5 free, 7 * 42 = 294 on top of the locked price
	assert.Equal(t, 10000+294+200, order.TotalPrice)
	assert.Equal(t, 10000, order.ConfirmationTotal)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)

	// On-road supplements go to the repo alongside the totals and are
	// flagged so the fee base excludes them
	require.Len(t, savedExtras, 1)
	assert.True(t, savedExtras[0].PostConfirmation)
	require.Len(t, order.Supplements, 1)
}

func TestCompleteOrder_WaitingUnderFreeThreshold(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:                orderID,
		Status:            models.OrderStatusInProgress,
		ConfirmationTotal: 8000,
		TotalPrice:        8000,
	}, nil)
	mockRepo.EXPECT().CompleteOrder(gomock.Any(), gomock.Any(), gomock.Len(0)).Return(nil)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	waiting := 5
	order, err := uc.CompleteOrder(context.Background(), orderID, &models.OrderCompleteRequest{
		WaitingMinutes: &waiting,
	})
	require.NoError(t, err)
	assert.Equal(t, 8000, order.TotalPrice)
}

func TestCompleteOrder_RetryAfterFailureDoesNotDuplicateSupplements(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.Order, error) {
			return &models.Order{
				ID:                orderID,
				Status:            models.OrderStatusInProgress,
				ConfirmationTotal: 10000,
				TotalPrice:        10000,
			}, nil
		}).Times(2)

	// First attempt: the repo rejects the whole completion. Totals and
	// supplements travel together, so nothing is persisted.
	mockRepo.EXPECT().
		CompleteOrder(gomock.Any(), gomock.Any(), gomock.Len(1)).
		Return(errors.New("connection reset"))

	price := 500
	req := &models.OrderCompleteRequest{
		Supplements: []models.SupplementItem{
			{Name: "arrêt supplémentaire", UnitPrice: &price},
		},
	}
	_, err := uc.CompleteOrder(context.Background(), orderID, req)
	require.Error(t, err)

	// Retry: the same single supplement is handed to the repo once more,
	// in one call, never as a separate prior write.
	var retried []models.Supplement
	mockRepo.EXPECT().
		CompleteOrder(gomock.Any(), gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ *models.Order, extras []models.Supplement) error {
			retried = extras
			return nil
		})
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	order, err := uc.CompleteOrder(context.Background(), orderID, req)
	require.NoError(t, err)
	require.Len(t, retried, 1)
	assert.Equal(t, 500, retried[0].UnitPrice)
	assert.Equal(t, 10500, order.TotalPrice)
}

func TestUpdateStatus_ConcurrentTransitionRejected(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	driverID := uuid.New()

	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:                orderID,
		Status:            models.OrderStatusPending,
		ConfirmationTotal: 5000,
	}, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID: driverID,
	}, nil)
	// Another driver accepted between our read and our write; the guarded
	// update matches zero rows and the repo rejects the change.
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.OrderStatusPending).
		Return(orders.ErrInvalidTransition)

	_, err := uc.UpdateStatus(context.Background(), orderID, &models.OrderStatusUpdateRequest{
		Status:   models.OrderStatusAccepted,
		DriverID: driverID.String(),
	})
	assert.ErrorIs(t, err, orders.ErrInvalidTransition)
}

func TestConfirmPayment_PublishesEvent(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	prestataireID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:            orderID,
		PrestataireID: &prestataireID,
		Status:        models.OrderStatusCompleted,
		TotalPrice:    11794,
		PaymentMethod: models.PaymentMethodCash,
	}, nil)
	mockRepo.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Return(nil)

	var published *models.PaymentConfirmedEvent
	mockGW.EXPECT().
		PublishPaymentConfirmed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.PaymentConfirmedEvent) error {
			published = e
			return nil
		})

	order, err := uc.ConfirmPayment(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaymentConfirmed, order.Status)
	require.NotNil(t, order.PaidAt)

	require.NotNil(t, published)
	assert.Equal(t, orderID, published.OrderID)
	assert.Equal(t, 11794, published.TotalPrice)
}

func TestConfirmPayment_AlreadyPaid(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:     orderID,
		Status: models.OrderStatusPaymentConfirmed,
	}, nil)

	_, err := uc.ConfirmPayment(context.Background(), orderID)
	assert.ErrorIs(t, err, orders.ErrOrderFinalized)
}

func TestConfirmPayment_EventFailureDoesNotFail(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:     orderID,
		Status: models.OrderStatusCompleted,
	}, nil)
	mockRepo.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		PublishPaymentConfirmed(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	order, err := uc.ConfirmPayment(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaymentConfirmed, order.Status)
}

func TestGetBreakdown_IndependentDriver(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	orderID := uuid.New()
	driverID := uuid.New()
	waiting := 12
	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{
		ID:                orderID,
		DriverID:          &driverID,
		Status:            models.OrderStatusPaymentConfirmed,
		RideOption:        models.RideOption{BaseFare: 1000, PricePerKm: 150},
		Route:             models.RouteInfo{Distance: 60},
		ConfirmationTotal: 11500,
		TotalPrice:        11794,
		WaitingMinutes:    &waiting,
	}, nil)
	mockGW.EXPECT().GetFeeConfig(gomock.Any()).Return(&models.FeeConfig{
		ServiceFeePercent: 15,
	}, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:                driverID,
		CommissionPercent: 95,
	}, nil)

	bd, err := uc.GetBreakdown(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, 10000, bd.PreFeeSubtotal)
	assert.Equal(t, 1500, bd.ServiceFee)
	assert.Equal(t, 294, bd.WaitingFare)
	// Every part sums back to the price the client paid
	total := bd.DriverEarnings + bd.PrestataireEarnings + bd.ServiceFee + bd.SupplementaryCommission
	assert.Equal(t, bd.TotalPrice, total)
}

func TestPostMessage_Validation(t *testing.T) {
	uc, _, _ := newTestUC(t)

	orderID := uuid.New()

	_, err := uc.PostMessage(context.Background(), orderID, &models.MessageCreateRequest{
		SenderID:   uuid.New().String(),
		SenderRole: models.MessageSenderClient,
		Body:       "   ",
	})
	assert.ErrorIs(t, err, orders.ErrValidation)

	_, err = uc.PostMessage(context.Background(), orderID, &models.MessageCreateRequest{
		SenderID:   uuid.New().String(),
		SenderRole: "robot",
		Body:       "bonjour",
	})
	assert.ErrorIs(t, err, orders.ErrValidation)
}

func TestPostMessage_Success(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	orderID := uuid.New()
	senderID := uuid.New()

	mockRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&models.Order{ID: orderID}, nil)
	mockRepo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

	msg, err := uc.PostMessage(context.Background(), orderID, &models.MessageCreateRequest{
		SenderID:   senderID.String(),
		SenderRole: models.MessageSenderDriver,
		Body:       "J'arrive dans 5 minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, msg.OrderID)
	assert.Equal(t, senderID, msg.SenderID)
	assert.False(t, msg.Read)
}
