package postgres

import (
	"context"

	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/repository"
	"cityportal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// documentRepository implements the repository.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

// List returns documents, optionally filtered by twin city and category.
func (repo *documentRepository) List(ctx context.Context, twinCityID int64, category string) ([]*entity.Document, error) {
	var documentModels []*model.DocumentModel

	query := repo.db.WithContext(ctx).Order("publication_year DESC, title ASC")
	if twinCityID > 0 {
		query = query.Where("twin_city_id = ?", twinCityID)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&documentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	documents := make([]*entity.Document, 0, len(documentModels))
	for _, documentM := range documentModels {
		documents = append(documents, toDocumentDomain(documentM))
	}

	return documents, nil
}

// FindByID retrieves a document by its unique ID.
func (repo *documentRepository) FindByID(ctx context.Context, id int64) (*entity.Document, error) {
	var documentM model.DocumentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toDocumentDomain(&documentM), nil
}

// Create persists a new digital-collection entry.
func (repo *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	documentM := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Create(documentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTwinCityNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required document information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = documentM.ID
	document.CreatedAt = documentM.CreatedAt
	document.UpdatedAt = documentM.UpdatedAt

	return nil
}

// Update modifies an existing document.
func (repo *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("id = ?", document.ID).
		Updates(fromDocumentDomain(document))
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrTwinCityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// Delete removes a document by ID.
func (repo *documentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DocumentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func toDocumentDomain(documentM *model.DocumentModel) *entity.Document {
	return &entity.Document{
		ID:              documentM.ID,
		Title:           documentM.Title,
		Author:          documentM.Author,
		PublicationYear: documentM.PublicationYear,
		Category:        documentM.Category,
		Kind:            entity.DocumentKind(documentM.Kind),
		FilePath:        documentM.FilePath,
		ExternalURL:     documentM.ExternalURL,
		TwinCityID:      documentM.TwinCityID,
		CreatedAt:       documentM.CreatedAt,
		UpdatedAt:       documentM.UpdatedAt,
	}
}

func fromDocumentDomain(document *entity.Document) *model.DocumentModel {
	return &model.DocumentModel{
		ID:              document.ID,
		Title:           document.Title,
		Author:          document.Author,
		PublicationYear: document.PublicationYear,
		Category:        document.Category,
		Kind:            string(document.Kind),
		FilePath:        document.FilePath,
		ExternalURL:     document.ExternalURL,
		TwinCityID:      document.TwinCityID,
		CreatedAt:       document.CreatedAt,
		UpdatedAt:       document.UpdatedAt,
	}
}
