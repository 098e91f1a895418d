package handler

import (
	"log/slog"
	"net/http"

	"cityportal/internal/delivery/http/response"
	"cityportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for map-location handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns locations, optionally filtered by the category query
// parameter.
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.uc.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// Get returns a single location by ID.
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// Create records a new map location.
func (h *LocationHandler) Create(c echo.Context) error {
	var input usecase.LocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// Update replaces the editable fields of a location.
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.LocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// Delete removes a location.
func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location deleted successfully")
}
