package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/pkg/pricing"
	"github.com/tapea/backoffice/internal/utils"
	"github.com/tapea/backoffice/services/billing"
)

// BillingHandler handles HTTP requests for billing operations
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing HTTP handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

func writeBillingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, billing.ErrFeeConfigNotFound):
		return utils.NotFoundResponse(c, "Fee configuration not set")
	case errors.Is(err, billing.ErrCollecteNotFound):
		return utils.NotFoundResponse(c, "Collecte entry not found")
	case errors.Is(err, billing.ErrAlreadyPaid):
		return utils.ConflictResponse(c, "Collecte entry already settled")
	case errors.Is(err, billing.ErrValidation), errors.Is(err, pricing.ErrInvalidOrder):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, pricing.ErrMissingConfig):
		return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Fee configuration unavailable")
	default:
		logger.Error("Billing operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}

// GetFeeConfig returns the current fee configuration
func (h *BillingHandler) GetFeeConfig(c echo.Context) error {
	cfg, err := h.billingUC.GetFeeConfig(c.Request().Context())
	if err != nil {
		return writeBillingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", cfg)
}

// UpdateFeeConfig applies an admin change to the fee configuration
func (h *BillingHandler) UpdateFeeConfig(c echo.Context) error {
	var req models.FeeConfigUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	cfg, err := h.billingUC.UpdateFeeConfig(c.Request().Context(), &req)
	if err != nil {
		return writeBillingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fee configuration updated", cfg)
}

// period parses the year/month query parameters, defaulting to the current month
func period(c echo.Context) (int, time.Month, error) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if raw := c.QueryParam("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("invalid year parameter")
		}
		year = y
	}
	if raw := c.QueryParam("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errors.New("invalid month parameter")
		}
		month = time.Month(m)
	}
	return year, month, nil
}

// Recompute rebuilds the collecte ledger for one billing month
func (h *BillingHandler) Recompute(c echo.Context) error {
	year, month, err := period(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.billingUC.Recompute(c.Request().Context(), year, month)
	if err != nil {
		return writeBillingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Collecte ledger recomputed", result)
}

// ListCollectes returns the ledger rows of one billing month
func (h *BillingHandler) ListCollectes(c echo.Context) error {
	year, month, err := period(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	entries, err := h.billingUC.ListCollectes(c.Request().Context(), year, month)
	if err != nil {
		return writeBillingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// GetCollecte returns one ledger row
func (h *BillingHandler) GetCollecte(c echo.Context) error {
	id, err := uuid.Parse(c.Param("collecteID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid collecte ID")
	}

	entry, err := h.billingUC.GetCollecte(c.Request().Context(), id)
	if err != nil {
		return writeBillingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", entry)
}

// MarkPaid settles part or all of a ledger row
func (h *BillingHandler) MarkPaid(c echo.Context) error {
	id, err := uuid.Parse(c.Param("collecteID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid collecte ID")
	}

	var req models.MarkPaidRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	entry, err := h.billingUC.MarkPaid(c.Request().Context(), id, &req)
	if err != nil {
		return writeBillingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment recorded", entry)
}
