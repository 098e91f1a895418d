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

// documentService implements the DocumentUsecase interface.
type documentService struct {
	txManager repository.TransactionManager
	repo      repository.DocumentRepository
	fileStore service.FileStore
	pipeline  *upload.Pipeline
	logger    *slog.Logger
}

// DocumentServiceParams holds dependencies for documentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repo      repository.DocumentRepository
	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		txManager: params.TxManager,
		repo:      params.Repo,
		fileStore: params.FileStore,
		pipeline:  upload.NewDocumentPipeline(params.FileStore),
		logger:    params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *documentService) List(ctx context.Context, input *usecase.ListDocumentsInput) ([]*entity.Document, error) {
	documents, err := srv.repo.List(ctx, input.TwinCityID, input.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return documents, nil
}

func (srv *documentService) Get(ctx context.Context, id int64) (*entity.Document, error) {
	document, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDocumentNotFound, "document lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	return document, nil
}

// Upload validates and stores the file, then records a physical entry. The
// twin city is verified and the row inserted in one transaction; the stored
// file is removed again if that transaction fails.
func (srv *documentService) Upload(ctx context.Context, input *usecase.UploadDocumentInput, file *multipart.FileHeader) (*entity.Document, error) {
	stored, err := srv.pipeline.ProcessOne(ctx, file)
	if err != nil {
		return nil, err
	}

	document := &entity.Document{
		Title:           input.Title,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
		Category:        input.Category,
		Kind:            entity.DocumentKindPhysical,
		FilePath:        stored.Key,
		TwinCityID:      input.TwinCityID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewTwinCityRepository().FindByID(ctx, input.TwinCityID); err != nil {
			if errors.Is(err, repository.ErrTwinCityNotFound) {
				return errors.Wrap(domainerrors.ErrTwinCityNotFound, "document upload failed")
			}

			return errors.Wrap(err, "failed to verify twin city")
		}

		return repoFactory.NewDocumentRepository().Create(ctx, document)
	})
	if err != nil {
		if deleteErr := srv.fileStore.Delete(ctx, stored.Key); deleteErr != nil {
			srv.log(ctx).Warn("Failed to clean up stored document after insert failure",
				slog.String("key", stored.Key), slog.Any("error", deleteErr))
		}

		return nil, errors.Wrap(err, "failed to execute document upload transaction")
	}

	srv.log(ctx).Info("Document uploaded",
		slog.Int64("id", document.ID), slog.String("key", stored.Key))

	return document, nil
}

// externalMissingFields reports absent required fields in a fixed order.
func externalMissingFields(input *usecase.ExternalDocumentInput) []string {
	var missing []string
	if input.ExternalURL == "" {
		missing = append(missing, "external_url")
	}
	if input.TwinCityID == 0 {
		missing = append(missing, "twin_city_id")
	}
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Author == "" {
		missing = append(missing, "author")
	}
	if input.PublicationYear == 0 {
		missing = append(missing, "publication_year")
	}
	if input.Category == "" {
		missing = append(missing, "category")
	}

	return missing
}

// RegisterExternal records a link-only entry. A fresh entity is built here so
// the stored kind is always external, whatever the client sent.
func (srv *documentService) RegisterExternal(ctx context.Context, input *usecase.ExternalDocumentInput) (*entity.Document, error) {
	if missing := externalMissingFields(input); len(missing) > 0 {
		return nil, domainerrors.NewMissingFieldsError(missing)
	}

	document := &entity.Document{
		Title:           input.Title,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
		Category:        input.Category,
		Kind:            entity.DocumentKindExternal,
		ExternalURL:     input.ExternalURL,
		TwinCityID:      input.TwinCityID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewTwinCityRepository().FindByID(ctx, input.TwinCityID); err != nil {
			if errors.Is(err, repository.ErrTwinCityNotFound) {
				return errors.Wrap(domainerrors.ErrTwinCityNotFound, "external registration failed")
			}

			return errors.Wrap(err, "failed to verify twin city")
		}

		return repoFactory.NewDocumentRepository().Create(ctx, document)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute external document transaction")
	}

	srv.log(ctx).Info("External document registered",
		slog.Int64("id", document.ID), slog.String("url", document.ExternalURL))

	return document, nil
}

// Delete removes an entry and, for physical documents, its stored file.
func (srv *documentService) Delete(ctx context.Context, id int64) error {
	document, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete document")
	}

	if document.Kind == entity.DocumentKindPhysical && document.FilePath != "" {
		if err := srv.fileStore.Delete(ctx, document.FilePath); err != nil {
			srv.log(ctx).Warn("Failed to delete document file",
				slog.String("key", document.FilePath), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Document deleted", slog.Int64("id", id))

	return nil
}
