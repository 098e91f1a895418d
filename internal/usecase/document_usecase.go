package usecase

import (
	"context"
	"mime/multipart"

	"cityportal/internal/domain/entity"
)

// ListDocumentsInput filters the digital collection. Zero values mean no
// filter.
type ListDocumentsInput struct {
	TwinCityID int64
	Category   string
}

// UploadDocumentInput carries the bibliographic fields accompanying a
// physical document upload.
type UploadDocumentInput struct {
	Title           string `form:"title" validate:"required"`
	Author          string `form:"author" validate:"required"`
	PublicationYear int    `form:"publication_year" validate:"required"`
	Category        string `form:"category" validate:"required"`
	TwinCityID      int64  `form:"twin_city_id" validate:"required"`
}

// ExternalDocumentInput is the JSON body registering a link-only entry.
// Field presence is checked by the usecase so the response can enumerate
// every missing field; a client-supplied kind is ignored.
type ExternalDocumentInput struct {
	ExternalURL     string `json:"external_url"`
	TwinCityID      int64  `json:"twin_city_id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
	Category        string `json:"category"`
}

// DocumentUsecase defines business operations for the digital collection.
type DocumentUsecase interface {
	List(ctx context.Context, input *ListDocumentsInput) ([]*entity.Document, error)
	Get(ctx context.Context, id int64) (*entity.Document, error)

	// Upload validates and stores the file, then records a physical entry.
	Upload(ctx context.Context, input *UploadDocumentInput, file *multipart.FileHeader) (*entity.Document, error)

	// RegisterExternal records a link-only entry. The stored kind is always
	// external regardless of client input.
	RegisterExternal(ctx context.Context, input *ExternalDocumentInput) (*entity.Document, error)

	// Delete removes an entry together with its stored file, if any.
	Delete(ctx context.Context, id int64) error
}
