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

// collaborationRepository implements the repository.CollaborationRepository interface.
type collaborationRepository struct {
	db *gorm.DB
}

// NewCollaborationRepository is the constructor for collaborationRepository.
func NewCollaborationRepository(db *gorm.DB) repository.CollaborationRepository {
	return &collaborationRepository{
		db: db,
	}
}

// List returns submissions, optionally filtered by status, newest first.
func (repo *collaborationRepository) List(ctx context.Context, status entity.CollaborationStatus) ([]*entity.Collaboration, error) {
	var collaborationModels []*model.CollaborationModel

	query := repo.db.WithContext(ctx).
		Preload("Attachments").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&collaborationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collaborations")
	}

	collaborations := make([]*entity.Collaboration, 0, len(collaborationModels))
	for _, collaborationM := range collaborationModels {
		collaborations = append(collaborations, toCollaborationDomain(collaborationM))
	}

	return collaborations, nil
}

// FindByID retrieves a submission with its attachments preloaded.
func (repo *collaborationRepository) FindByID(ctx context.Context, id int64) (*entity.Collaboration, error) {
	var collaborationM model.CollaborationModel

	if err := repo.db.WithContext(ctx).
		Preload("Attachments").
		Where("id = ?", id).
		First(&collaborationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollaborationNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration by id")
	}

	return toCollaborationDomain(&collaborationM), nil
}

// Create persists a submission together with its attachments.
func (repo *collaborationRepository) Create(ctx context.Context, collaboration *entity.Collaboration) error {
	collaborationM := fromCollaborationDomain(collaboration)

	if err := repo.db.WithContext(ctx).Create(collaborationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required collaboration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collaboration")
	}

	collaboration.ID = collaborationM.ID
	collaboration.CreatedAt = collaborationM.CreatedAt
	for i := range collaborationM.Attachments {
		if i < len(collaboration.Attachments) {
			collaboration.Attachments[i].ID = collaborationM.Attachments[i].ID
			collaboration.Attachments[i].CollaborationID = collaborationM.ID
		}
	}

	return nil
}

// UpdateStatus moves a submission through the review workflow.
func (repo *collaborationRepository) UpdateStatus(ctx context.Context, id int64, status entity.CollaborationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CollaborationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collaboration status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollaborationNotFound
	}

	return nil
}

func toCollaborationDomain(collaborationM *model.CollaborationModel) *entity.Collaboration {
	collaboration := &entity.Collaboration{
		ID:        collaborationM.ID,
		Name:      collaborationM.Name,
		Email:     collaborationM.Email,
		Subject:   collaborationM.Subject,
		Message:   collaborationM.Message,
		Status:    entity.CollaborationStatus(collaborationM.Status),
		CreatedAt: collaborationM.CreatedAt,
	}

	for _, attachmentM := range collaborationM.Attachments {
		collaboration.Attachments = append(collaboration.Attachments, entity.CollaborationAttachment{
			ID:              attachmentM.ID,
			CollaborationID: attachmentM.CollaborationID,
			FilePath:        attachmentM.FilePath,
			OriginalName:    attachmentM.OriginalName,
			SizeBytes:       attachmentM.SizeBytes,
			CreatedAt:       attachmentM.CreatedAt,
		})
	}

	return collaboration
}

func fromCollaborationDomain(collaboration *entity.Collaboration) *model.CollaborationModel {
	collaborationM := &model.CollaborationModel{
		ID:      collaboration.ID,
		Name:    collaboration.Name,
		Email:   collaboration.Email,
		Subject: collaboration.Subject,
		Message: collaboration.Message,
		Status:  string(collaboration.Status),
	}

	for _, attachment := range collaboration.Attachments {
		collaborationM.Attachments = append(collaborationM.Attachments, model.CollaborationAttachmentModel{
			FilePath:     attachment.FilePath,
			OriginalName: attachment.OriginalName,
			SizeBytes:    attachment.SizeBytes,
		})
	}

	return collaborationM
}
