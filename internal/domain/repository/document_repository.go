package repository

import (
	"context"
	"errors"

	"cityportal/internal/domain/entity"
)

// ErrDocumentNotFound is returned when a digital-collection entry does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository defines persistence operations for the digital collection.
type DocumentRepository interface {
	// List returns documents, optionally filtered by twin city and category.
	// Zero values mean no filter.
	List(ctx context.Context, twinCityID int64, category string) ([]*entity.Document, error)
	FindByID(ctx context.Context, id int64) (*entity.Document, error)
	Create(ctx context.Context, document *entity.Document) error
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id int64) error
}
