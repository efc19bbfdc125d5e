package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/utils"
	"github.com/tapea/backoffice/services/fleet"
)

// FleetHandler handles HTTP requests for fleet operations
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

func writeFleetError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fleet.ErrPrestataireNotFound), errors.Is(err, fleet.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, fleet.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, fleet.ErrAccountInactive):
		return utils.ForbiddenResponse(c, "Account is deactivated")
	case errors.Is(err, fleet.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error("Fleet operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}

// CreatePrestataire onboards a prestataire
func (h *FleetHandler) CreatePrestataire(c echo.Context) error {
	var req models.PrestataireCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	p, err := h.fleetUC.CreatePrestataire(c.Request().Context(), &req)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Prestataire created", p)
}

// GetPrestataire retrieves a prestataire
func (h *FleetHandler) GetPrestataire(c echo.Context) error {
	id, err := uuid.Parse(c.Param("prestataireID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid prestataire ID")
	}

	p, err := h.fleetUC.GetPrestataire(c.Request().Context(), id)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", p)
}

// ListPrestataires lists all prestataires
func (h *FleetHandler) ListPrestataires(c echo.Context) error {
	result, err := h.fleetUC.ListPrestataires(c.Request().Context())
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

type activeRequest struct {
	Active bool `json:"active"`
}

// SetPrestataireActive toggles a prestataire's active flag
func (h *FleetHandler) SetPrestataireActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("prestataireID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid prestataire ID")
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.fleetUC.SetPrestataireActive(c.Request().Context(), id, req.Active); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Prestataire updated", nil)
}

// CreateDriver onboards a driver
func (h *FleetHandler) CreateDriver(c echo.Context) error {
	var req models.DriverCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	d, err := h.fleetUC.CreateDriver(c.Request().Context(), &req)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver created", d)
}

// GetDriver retrieves a driver
func (h *FleetHandler) GetDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	d, err := h.fleetUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", d)
}

// ListDrivers lists drivers, optionally scoped to one prestataire
func (h *FleetHandler) ListDrivers(c echo.Context) error {
	var prestataireID *uuid.UUID
	if raw := c.QueryParam("prestataire_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid prestataire_id parameter")
		}
		prestataireID = &id
	}

	result, err := h.fleetUC.ListDrivers(c.Request().Context(), prestataireID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SetDriverActive toggles a driver's active flag
func (h *FleetHandler) SetDriverActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.fleetUC.SetDriverActive(c.Request().Context(), id, req.Active); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver updated", nil)
}

// Login exchanges an access code for a JWT
func (h *FleetHandler) Login(c echo.Context) error {
	var req models.AccessLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.fleetUC.Login(c.Request().Context(), &req)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// UpdatePosition records a live driver position
func (h *FleetHandler) UpdatePosition(c echo.Context) error {
	id, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var pos models.DriverPosition
	if err := c.Bind(&pos); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	pos.DriverID = id

	if err := h.fleetUC.UpdatePosition(c.Request().Context(), &pos); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Position recorded", nil)
}

// NearbyDrivers finds live drivers around a point
func (h *FleetHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude parameter")
	}

	radius := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km parameter")
		}
	}

	result, err := h.fleetUC.NearbyDrivers(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
