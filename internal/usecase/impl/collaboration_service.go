package impl

import (
	"context"
	"log/slog"
	"mime/multipart"

	deliverycontext "cityportal/internal/delivery/context"
	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/repository"
	"cityportal/internal/domain/service"
	"cityportal/internal/upload"
	"cityportal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collaborationService implements the CollaborationUsecase interface.
type collaborationService struct {
	txManager repository.TransactionManager
	repo      repository.CollaborationRepository
	fileStore service.FileStore
	pipeline  *upload.Pipeline
	logger    *slog.Logger
}

// CollaborationServiceParams holds dependencies for collaborationService, injected by Fx.
type CollaborationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repo      repository.CollaborationRepository
	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewCollaborationService is the constructor for collaborationService.
func NewCollaborationService(params CollaborationServiceParams) usecase.CollaborationUsecase {
	return &collaborationService{
		txManager: params.TxManager,
		repo:      params.Repo,
		fileStore: params.FileStore,
		pipeline:  upload.NewCollaborationAttachmentPipeline(params.FileStore),
		logger:    params.Logger,
	}
}

func (srv *collaborationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates and stores the attachments, then records the submission in
// pending state. Stored files are removed again if the insert fails.
func (srv *collaborationService) Submit(ctx context.Context, input *usecase.SubmitCollaborationInput, files []*multipart.FileHeader) (*entity.Collaboration, error) {
	var stored []entity.StoredUpload
	if len(files) > 0 {
		var err error
		stored, err = srv.pipeline.Process(ctx, files)
		if err != nil {
			return nil, err
		}
	}

	collaboration := &entity.Collaboration{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  entity.CollaborationStatusPending,
	}
	for _, file := range stored {
		collaboration.Attachments = append(collaboration.Attachments, entity.CollaborationAttachment{
			FilePath:     file.Key,
			OriginalName: file.OriginalName,
			SizeBytes:    file.SizeBytes,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCollaborationRepository().Create(ctx, collaboration)
	})
	if err != nil {
		for _, file := range stored {
			if deleteErr := srv.fileStore.Delete(ctx, file.Key); deleteErr != nil {
				srv.log(ctx).Warn("Failed to clean up attachment after insert failure",
					slog.String("key", file.Key), slog.Any("error", deleteErr))
			}
		}

		return nil, errors.Wrap(err, "failed to execute collaboration transaction")
	}

	srv.log(ctx).Info("Collaboration submitted",
		slog.Int64("id", collaboration.ID), slog.Int("attachments", len(stored)))

	return collaboration, nil
}

func (srv *collaborationService) List(ctx context.Context, status string) ([]*entity.Collaboration, error) {
	if status != "" {
		if err := validateStatus(status); err != nil {
			return nil, err
		}
	}

	collaborations, err := srv.repo.List(ctx, entity.CollaborationStatus(status))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collaborations")
	}

	return collaborations, nil
}

func (srv *collaborationService) Get(ctx context.Context, id int64) (*entity.Collaboration, error) {
	collaboration, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCollaborationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCollaborationNotFound, "collaboration lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find collaboration")
	}

	return collaboration, nil
}

// UpdateStatus moves a submission through the review workflow.
func (srv *collaborationService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Collaboration, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	if err := srv.repo.UpdateStatus(ctx, id, entity.CollaborationStatus(status)); err != nil {
		if errors.Is(err, repository.ErrCollaborationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCollaborationNotFound, "collaboration status update failed")
		}

		return nil, errors.Wrap(err, "failed to update collaboration status")
	}

	srv.log(ctx).Info("Collaboration status updated",
		slog.Int64("id", id), slog.String("status", status))

	return srv.Get(ctx, id)
}

func validateStatus(status string) error {
	switch entity.CollaborationStatus(status) {
	case entity.CollaborationStatusPending,
		entity.CollaborationStatusReviewed,
		entity.CollaborationStatusArchived:
		return nil
	default:
		return domainerrors.NewValidationError("invalid status " + status + ", must be one of pending, reviewed, archived")
	}
}
