package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/tapea/backoffice/internal/pkg/jwt"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/fleet"
	"github.com/tapea/backoffice/services/fleet/mocks"
)

func newTestUC(t *testing.T) (fleet.FleetUC, *mocks.MockFleetRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockFleetRepo(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tapea-backoffice",
		},
	}
	uc, err := NewFleetUC(cfg, mockRepo)
	require.NoError(t, err)
	return uc, mockRepo
}

func testHash(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreatePrestataire_HashesAccessCode(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	var stored *models.Prestataire
	mockRepo.EXPECT().CreatePrestataire(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Prestataire) error {
			stored = p
			return nil
		})

	p, err := uc.CreatePrestataire(context.Background(), &models.PrestataireCreateRequest{
		Name:       "Tahiti Taxi SARL",
		Type:       models.PrestataireTypeTaxiCompany,
		AccessCode: "secret-code",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.True(t, p.Active)
	assert.NotEqual(t, "secret-code", stored.AccessCodeHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.AccessCodeHash), []byte("secret-code")))
}

func TestCreatePrestataire_Validation(t *testing.T) {
	uc, _ := newTestUC(t)

	tests := []struct {
		name string
		req  *models.PrestataireCreateRequest
	}{
		{
			name: "missing name",
			req:  &models.PrestataireCreateRequest{Type: models.PrestataireTypeTaxiCompany, AccessCode: "secret-code"},
		},
		{
			name: "unknown type",
			req:  &models.PrestataireCreateRequest{Name: "X", Type: "food_truck", AccessCode: "secret-code"},
		},
		{
			name: "short access code",
			req:  &models.PrestataireCreateRequest{Name: "X", Type: models.PrestataireTypePatenteTaxi, AccessCode: "abc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreatePrestataire(context.Background(), tt.req)
			assert.ErrorIs(t, err, fleet.ErrValidation)
		})
	}
}

func TestCreateDriver_DefaultCommission(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	prestataireID := uuid.New()
	mockRepo.EXPECT().GetPrestataire(gomock.Any(), prestataireID).
		Return(&models.Prestataire{ID: prestataireID, Active: true}, nil)
	mockRepo.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)

	d, err := uc.CreateDriver(context.Background(), &models.DriverCreateRequest{
		PrestataireID: prestataireID.String(),
		FullName:      "Teva Marae",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultDriverCommissionPercent, d.CommissionPercent)
	require.NotNil(t, d.PrestataireID)
	assert.Equal(t, prestataireID, *d.PrestataireID)
	assert.False(t, d.Independent())
}

func TestCreateDriver_UnknownPrestataireRejected(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	prestataireID := uuid.New()
	mockRepo.EXPECT().GetPrestataire(gomock.Any(), prestataireID).
		Return(nil, fleet.ErrPrestataireNotFound)

	_, err := uc.CreateDriver(context.Background(), &models.DriverCreateRequest{
		PrestataireID: prestataireID.String(),
		FullName:      "Teva Marae",
	})
	assert.ErrorIs(t, err, fleet.ErrPrestataireNotFound)
}

func TestCreateDriver_SalariedCannotBelongToPrestataire(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	prestataireID := uuid.New()
	mockRepo.EXPECT().GetPrestataire(gomock.Any(), prestataireID).
		Return(&models.Prestataire{ID: prestataireID, Active: true}, nil)

	_, err := uc.CreateDriver(context.Background(), &models.DriverCreateRequest{
		PrestataireID: prestataireID.String(),
		FullName:      "Teva Marae",
		Salaried:      true,
	})
	assert.ErrorIs(t, err, fleet.ErrValidation)
}

func TestCreateDriver_CommissionOutOfRange(t *testing.T) {
	uc, _ := newTestUC(t)

	bad := 120.0
	_, err := uc.CreateDriver(context.Background(), &models.DriverCreateRequest{
		FullName:          "Teva Marae",
		CommissionPercent: &bad,
	})
	assert.ErrorIs(t, err, fleet.ErrValidation)
}

func TestCreateDriver_IndependentWithoutPrestataire(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	mockRepo.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)

	d, err := uc.CreateDriver(context.Background(), &models.DriverCreateRequest{
		FullName: "Moana Teriipaia",
	})
	require.NoError(t, err)
	assert.True(t, d.Independent())
}

func TestLogin_DriverSuccess(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:             driverID,
		AccessCodeHash: testHash(t, "secret-code"),
		Active:         true,
	}, nil)

	resp, err := uc.Login(context.Background(), &models.AccessLoginRequest{
		DriverID:   driverID.String(),
		AccessCode: "secret-code",
	})
	require.NoError(t, err)

	assert.Equal(t, jwtpkg.RoleDriver, resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_PrestataireSuccess(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	prestataireID := uuid.New()
	mockRepo.EXPECT().GetPrestataire(gomock.Any(), prestataireID).Return(&models.Prestataire{
		ID:             prestataireID,
		AccessCodeHash: testHash(t, "secret-code"),
		Active:         true,
	}, nil)

	resp, err := uc.Login(context.Background(), &models.AccessLoginRequest{
		PrestataireID: prestataireID.String(),
		AccessCode:    "secret-code",
	})
	require.NoError(t, err)
	assert.Equal(t, jwtpkg.RolePrestataire, resp.Role)
}

func TestLogin_WrongCode(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:             driverID,
		AccessCodeHash: testHash(t, "secret-code"),
		Active:         true,
	}, nil)

	_, err := uc.Login(context.Background(), &models.AccessLoginRequest{
		DriverID:   driverID.String(),
		AccessCode: "wrong-code",
	})
	assert.ErrorIs(t, err, fleet.ErrInvalidCredentials)
}

func TestLogin_NoAccessCodeConfigured(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{
		ID:     driverID,
		Active: true,
	}, nil)

	_, err := uc.Login(context.Background(), &models.AccessLoginRequest{
		DriverID:   driverID.String(),
		AccessCode: "anything",
	})
	assert.ErrorIs(t, err, fleet.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	prestataireID := uuid.New()
	mockRepo.EXPECT().GetPrestataire(gomock.Any(), prestataireID).Return(&models.Prestataire{
		ID:             prestataireID,
		AccessCodeHash: testHash(t, "secret-code"),
		Active:         false,
	}, nil)

	_, err := uc.Login(context.Background(), &models.AccessLoginRequest{
		PrestataireID: prestataireID.String(),
		AccessCode:    "secret-code",
	})
	assert.ErrorIs(t, err, fleet.ErrAccountInactive)
}

func TestLogin_MissingIdentity(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.Login(context.Background(), &models.AccessLoginRequest{AccessCode: "secret-code"})
	assert.ErrorIs(t, err, fleet.ErrValidation)
}

func TestUpdatePosition_SetsGeohashAndTimestamp(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	var stored *models.DriverPosition
	mockRepo.EXPECT().StorePosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos *models.DriverPosition) error {
			stored = pos
			return nil
		})

	err := uc.UpdatePosition(context.Background(), &models.DriverPosition{
		DriverID:  uuid.New(),
		Latitude:  -17.5516,
		Longitude: -149.5585,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEmpty(t, stored.Geohash)
	assert.False(t, stored.Timestamp.IsZero())
}

func TestUpdatePosition_RejectsBadCoordinates(t *testing.T) {
	uc, _ := newTestUC(t)

	err := uc.UpdatePosition(context.Background(), &models.DriverPosition{
		DriverID:  uuid.New(),
		Latitude:  91,
		Longitude: -149.5585,
	})
	assert.ErrorIs(t, err, fleet.ErrValidation)
}

func TestNearbyDrivers_DefaultRadius(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	mockRepo.EXPECT().NearbyDrivers(gomock.Any(), -17.5516, -149.5585, 5.0).
		Return([]models.NearbyDriver{{DriverID: uuid.New().String(), DistanceKm: 1.2}}, nil)

	result, err := uc.NearbyDrivers(context.Background(), -17.5516, -149.5585, 0)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
