package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"cityportal/internal/delivery/http/response"
	"cityportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollaborationHandler holds dependencies for collaboration handlers.
type CollaborationHandler struct {
	uc     usecase.CollaborationUsecase
	logger *slog.Logger
}

// NewCollaborationHandler is the constructor for CollaborationHandler,
// injected by Fx.
func NewCollaborationHandler(uc usecase.CollaborationUsecase, logger *slog.Logger) *CollaborationHandler {
	return &CollaborationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit accepts a visitor's proposal as a multipart form. Attachments come
// from the repeated "files" field; submissions without attachments are valid.
func (h *CollaborationHandler) Submit(c echo.Context) error {
	// Form bodies must bind into a value; echo's form binder rejects a
	// pointer-to-pointer destination.
	var input usecase.SubmitCollaborationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collaboration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	collaboration, err := h.uc.Submit(c.Request().Context(), &input, formFiles(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, collaboration, "Collaboration submitted successfully")
}

// List returns submissions for review, optionally filtered by the status
// query parameter.
func (h *CollaborationHandler) List(c echo.Context) error {
	collaborations, err := h.uc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collaborations, "Collaborations retrieved successfully")
}

// Get returns a single submission by ID.
func (h *CollaborationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	collaboration, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collaboration, "Collaboration retrieved successfully")
}

// UpdateStatus moves a submission through the review workflow.
func (h *CollaborationHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	collaboration, err := h.uc.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collaboration, "Collaboration status updated successfully")
}

// formFiles collects attachment headers from the multipart form. A request
// without a multipart body simply yields no attachments.
func formFiles(c echo.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	if files := form.File["files"]; len(files) > 0 {
		return files
	}

	return form.File["attachments"]
}
