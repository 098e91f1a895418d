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

// documentUsecaseStub lets each test observe exactly what the handler hands
// to the business layer.
type documentUsecaseStub struct {
	uploadInput   *usecase.UploadDocumentInput
	uploadFile    *multipart.FileHeader
	externalInput *usecase.ExternalDocumentInput
	externalErr   error
}

func (s *documentUsecaseStub) List(context.Context, *usecase.ListDocumentsInput) ([]*entity.Document, error) {
	return nil, nil
}

func (s *documentUsecaseStub) Get(context.Context, int64) (*entity.Document, error) {
	return nil, nil
}

func (s *documentUsecaseStub) Upload(_ context.Context, input *usecase.UploadDocumentInput, file *multipart.FileHeader) (*entity.Document, error) {
	s.uploadInput = input
	s.uploadFile = file

	return &entity.Document{ID: 5, Title: input.Title}, nil
}

func (s *documentUsecaseStub) RegisterExternal(_ context.Context, input *usecase.ExternalDocumentInput) (*entity.Document, error) {
	s.externalInput = input
	if s.externalErr != nil {
		return nil, s.externalErr
	}

	return &entity.Document{ID: 6, Kind: entity.DocumentKindExternal}, nil
}

func (s *documentUsecaseStub) Delete(context.Context, int64) error {
	return nil
}

func TestDocumentHandler_Upload_BindsMultipartForm(t *testing.T) {
	uc := &documentUsecaseStub{}
	h := NewDocumentHandler(uc, newDiscardLogger())

	c, rec := newMultipartContext(t, "/documents",
		map[string]string{
			"title":            "City Chronicle",
			"author":           "J. Dole",
			"publication_year": "1987",
			"category":         "history",
			"twin_city_id":     "3",
		},
		formPart{field: "file", filename: "chronicle.pdf", contentType: "application/pdf", content: "%PDF"},
	)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The form fields must reach the usecase, not die in binding.
	require.NotNil(t, uc.uploadInput)
	assert.Equal(t, "City Chronicle", uc.uploadInput.Title)
	assert.Equal(t, "J. Dole", uc.uploadInput.Author)
	assert.Equal(t, 1987, uc.uploadInput.PublicationYear)
	assert.Equal(t, int64(3), uc.uploadInput.TwinCityID)
	require.NotNil(t, uc.uploadFile)
	assert.Equal(t, "chronicle.pdf", uc.uploadFile.Filename)
}

func TestDocumentHandler_Upload_MissingFieldsFailValidation(t *testing.T) {
	uc := &documentUsecaseStub{}
	h := NewDocumentHandler(uc, newDiscardLogger())

	c, _ := newMultipartContext(t, "/documents",
		map[string]string{"title": "City Chronicle"},
		formPart{field: "file", filename: "chronicle.pdf", contentType: "application/pdf", content: "%PDF"},
	)

	err := h.Upload(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Nil(t, uc.uploadInput)
}

func TestDocumentHandler_RegisterExternal_NullBody(t *testing.T) {
	uc := &documentUsecaseStub{
		externalErr: domainerrors.NewMissingFieldsError([]string{
			"external_url", "twin_city_id", "title", "author", "publication_year", "category",
		}),
	}
	h := NewDocumentHandler(uc, newDiscardLogger())

	// A JSON body of "null" binds without error; the usecase must still
	// receive a non-nil input and answer with the missing-field list.
	c, _ := newJSONContext(t, http.MethodPost, "/documents/external", "null")

	err := h.RegisterExternal(c)

	require.NotNil(t, uc.externalInput)
	assert.Empty(t, uc.externalInput.ExternalURL)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "missing required fields: external_url, twin_city_id, title, author, publication_year, category", appErr.Message())
}
