package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"testing"

	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collaborationUsecaseStub struct {
	submitInput *usecase.SubmitCollaborationInput
	submitFiles []*multipart.FileHeader
}

func (s *collaborationUsecaseStub) Submit(_ context.Context, input *usecase.SubmitCollaborationInput, files []*multipart.FileHeader) (*entity.Collaboration, error) {
	s.submitInput = input
	s.submitFiles = files

	return &entity.Collaboration{ID: 9, Status: entity.CollaborationStatusPending}, nil
}

func (s *collaborationUsecaseStub) List(context.Context, string) ([]*entity.Collaboration, error) {
	return nil, nil
}

func (s *collaborationUsecaseStub) Get(context.Context, int64) (*entity.Collaboration, error) {
	return nil, nil
}

func (s *collaborationUsecaseStub) UpdateStatus(context.Context, int64, string) (*entity.Collaboration, error) {
	return nil, nil
}

func TestCollaborationHandler_Submit_BindsMultipartForm(t *testing.T) {
	uc := &collaborationUsecaseStub{}
	h := NewCollaborationHandler(uc, newDiscardLogger())

	c, rec := newMultipartContext(t, "/collaborations",
		map[string]string{
			"name":    "Ada Byron",
			"email":   "ada@example.org",
			"subject": "Joint exhibition",
			"message": "We would like to propose a shared exhibition.",
		},
		formPart{field: "files", filename: "proposal.pdf", contentType: "application/pdf", content: "%PDF"},
		formPart{field: "files", filename: "budget.xlsx", contentType: "application/vnd.ms-excel", content: "xlsx"},
	)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.submitInput)
	assert.Equal(t, "Ada Byron", uc.submitInput.Name)
	assert.Equal(t, "ada@example.org", uc.submitInput.Email)
	assert.Equal(t, "Joint exhibition", uc.submitInput.Subject)
	require.Len(t, uc.submitFiles, 2)
	assert.Equal(t, "proposal.pdf", uc.submitFiles[0].Filename)
}

func TestCollaborationHandler_Submit_WithoutAttachments(t *testing.T) {
	uc := &collaborationUsecaseStub{}
	h := NewCollaborationHandler(uc, newDiscardLogger())

	c, rec := newMultipartContext(t, "/collaborations",
		map[string]string{
			"name":    "Ada Byron",
			"email":   "ada@example.org",
			"subject": "Joint exhibition",
			"message": "No attachments this time.",
		},
	)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, uc.submitFiles)
}

func TestCollaborationHandler_Submit_MissingFieldsFailValidation(t *testing.T) {
	uc := &collaborationUsecaseStub{}
	h := NewCollaborationHandler(uc, newDiscardLogger())

	c, _ := newMultipartContext(t, "/collaborations",
		map[string]string{"name": "Ada Byron"},
	)

	err := h.Submit(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Nil(t, uc.submitInput)
}
