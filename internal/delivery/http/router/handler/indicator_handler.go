package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cityportal/internal/delivery/http/response"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IndicatorHandler holds dependencies for city-indicator handlers.
type IndicatorHandler struct {
	uc     usecase.IndicatorUsecase
	logger *slog.Logger
}

// NewIndicatorHandler is the constructor for IndicatorHandler, injected by Fx.
func NewIndicatorHandler(uc usecase.IndicatorUsecase, logger *slog.Logger) *IndicatorHandler {
	return &IndicatorHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns indicators, optionally filtered by the category and year
// query parameters.
func (h *IndicatorHandler) List(c echo.Context) error {
	var year int
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errors.WithStack(domainerrors.NewValidationError("invalid year filter"))
		}
		year = parsed
	}

	indicators, err := h.uc.List(c.Request().Context(), c.QueryParam("category"), year)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, indicators, "Indicators retrieved successfully")
}

// Get returns a single indicator by ID.
func (h *IndicatorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	indicator, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, indicator, "Indicator retrieved successfully")
}

// Create records a new indicator.
func (h *IndicatorHandler) Create(c echo.Context) error {
	var input usecase.IndicatorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid indicator input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	indicator, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, indicator, "Indicator created successfully")
}

// Update replaces the editable fields of an indicator.
func (h *IndicatorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.IndicatorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid indicator input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	indicator, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, indicator, "Indicator updated successfully")
}

// Delete removes an indicator.
func (h *IndicatorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Indicator deleted successfully")
}
