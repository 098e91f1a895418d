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

// DocumentHandler holds dependencies for digital-collection handlers.
type DocumentHandler struct {
	uc     usecase.DocumentUsecase
	logger *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(uc usecase.DocumentUsecase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns collection entries, optionally filtered by the twin_city_id
// and category query parameters.
func (h *DocumentHandler) List(c echo.Context) error {
	input := &usecase.ListDocumentsInput{
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("twin_city_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.WithStack(domainerrors.NewValidationError("invalid twin_city_id filter"))
		}
		input.TwinCityID = id
	}

	documents, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, documents, "Documents retrieved successfully")
}

// Get returns a single collection entry by ID.
func (h *DocumentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	document, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, document, "Document retrieved successfully")
}

// Upload accepts a multipart form with bibliographic fields and a single
// "file" field, and records a physical entry.
func (h *DocumentHandler) Upload(c echo.Context) error {
	// Form bodies must bind into a value; echo's form binder rejects a
	// pointer-to-pointer destination.
	var input usecase.UploadDocumentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.NewValidationError("no file provided"))
	}

	document, err := h.uc.Upload(c.Request().Context(), &input, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, document, "Document uploaded successfully")
}

// RegisterExternal records a link-only entry from a JSON body. Missing
// fields are reported by the usecase so the client sees all of them at once.
func (h *DocumentHandler) RegisterExternal(c echo.Context) error {
	// Binding into a value keeps the input non-nil on a JSON "null" body;
	// the usecase then reports the missing fields instead of panicking.
	var input usecase.ExternalDocumentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid external document input")
	}

	document, err := h.uc.RegisterExternal(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, document, "External document registered successfully")
}

// Delete removes an entry together with its stored file, if any.
func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document deleted successfully")
}
