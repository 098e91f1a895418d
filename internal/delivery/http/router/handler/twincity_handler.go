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

// TwinCityHandler holds dependencies for twin-city handlers.
type TwinCityHandler struct {
	uc     usecase.TwinCityUsecase
	logger *slog.Logger
}

// NewTwinCityHandler is the constructor for TwinCityHandler, injected by Fx.
func NewTwinCityHandler(uc usecase.TwinCityUsecase, logger *slog.Logger) *TwinCityHandler {
	return &TwinCityHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every twin-city pairing.
func (h *TwinCityHandler) List(c echo.Context) error {
	cities, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "Twin cities retrieved successfully")
}

// Get returns a single twin city by ID.
func (h *TwinCityHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "Twin city retrieved successfully")
}

// Create records a new twin-city pairing.
func (h *TwinCityHandler) Create(c echo.Context) error {
	var input usecase.TwinCityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid twin city input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, city, "Twin city created successfully")
}

// Update replaces the editable fields of a twin city.
func (h *TwinCityHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.TwinCityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid twin city input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "Twin city updated successfully")
}

// Delete removes a twin city.
func (h *TwinCityHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Twin city deleted successfully")
}

// pathID parses the :id path parameter shared by the CRUD handlers.
func pathID(c echo.Context) (int64, error) {
	return pathParamID(c, "id")
}

func pathParamID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.NewValidationError("invalid " + name + " parameter"))
	}

	return id, nil
}
