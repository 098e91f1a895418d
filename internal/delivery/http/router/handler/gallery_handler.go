package handler

import (
	"log/slog"
	"net/http"

	"cityportal/internal/delivery/http/response"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GalleryHandler holds dependencies for gallery handlers.
type GalleryHandler struct {
	uc     usecase.GalleryUsecase
	logger *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler, injected by Fx.
func NewGalleryHandler(uc usecase.GalleryUsecase, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every gallery with its images.
func (h *GalleryHandler) List(c echo.Context) error {
	galleries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, galleries, "Galleries retrieved successfully")
}

// Get returns a single gallery by ID.
func (h *GalleryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	gallery, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gallery, "Gallery retrieved successfully")
}

// Create records a new gallery.
func (h *GalleryHandler) Create(c echo.Context) error {
	var input usecase.GalleryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	gallery, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, gallery, "Gallery created successfully")
}

// Update replaces the editable fields of a gallery.
func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.GalleryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	gallery, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gallery, "Gallery updated successfully")
}

// Delete removes a gallery together with its stored images.
func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Gallery deleted successfully")
}

// AddImage stores an uploaded image and attaches it to the gallery. The
// image arrives as the multipart "file" field, with an optional "caption"
// form value.
func (h *GalleryHandler) AddImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.NewValidationError("no file provided"))
	}

	image, err := h.uc.AddImage(c.Request().Context(), id, file, c.FormValue("caption"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Gallery image added successfully")
}

// DeleteImage removes a single image from a gallery.
func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	imageID, err := pathParamID(c, "imageId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteImage(c.Request().Context(), id, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Gallery image deleted successfully")
}
