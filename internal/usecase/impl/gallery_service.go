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

// galleryService implements the GalleryUsecase interface.
type galleryService struct {
	repo      repository.GalleryRepository
	fileStore service.FileStore
	pipeline  *upload.Pipeline
	logger    *slog.Logger
}

// GalleryServiceParams holds dependencies for galleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	Repo      repository.GalleryRepository
	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	return &galleryService{
		repo:      params.Repo,
		fileStore: params.FileStore,
		pipeline:  upload.NewGalleryImagePipeline(params.FileStore),
		logger:    params.Logger,
	}
}

func (srv *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *galleryService) List(ctx context.Context) ([]*entity.Gallery, error) {
	galleries, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list galleries")
	}

	return galleries, nil
}

func (srv *galleryService) Get(ctx context.Context, id int64) (*entity.Gallery, error) {
	gallery, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGalleryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGalleryNotFound, "gallery lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find gallery")
	}

	return gallery, nil
}

func (srv *galleryService) Create(ctx context.Context, input *usecase.GalleryInput) (*entity.Gallery, error) {
	gallery := &entity.Gallery{
		Title:       input.Title,
		Description: input.Description,
	}

	if err := srv.repo.Create(ctx, gallery); err != nil {
		return nil, errors.Wrap(err, "failed to create gallery")
	}

	srv.log(ctx).Info("Gallery created", slog.Int64("id", gallery.ID), slog.String("title", gallery.Title))

	return gallery, nil
}

func (srv *galleryService) Update(ctx context.Context, id int64, input *usecase.GalleryInput) (*entity.Gallery, error) {
	gallery, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	gallery.Title = input.Title
	gallery.Description = input.Description

	if err := srv.repo.Update(ctx, gallery); err != nil {
		return nil, errors.Wrap(err, "failed to update gallery")
	}

	return gallery, nil
}

// Delete removes the gallery row first, then cleans up stored image files
// best-effort. A leftover file is preferable to a dangling database row.
func (srv *galleryService) Delete(ctx context.Context, id int64) error {
	gallery, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete gallery")
	}

	for _, image := range gallery.Images {
		if err := srv.fileStore.Delete(ctx, image.ImagePath); err != nil {
			srv.log(ctx).Warn("Failed to delete gallery image file",
				slog.String("key", image.ImagePath), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Gallery deleted", slog.Int64("id", id))

	return nil
}

// AddImage validates and stores the uploaded image, then attaches it to the
// gallery. The stored file is removed again if the database insert fails.
func (srv *galleryService) AddImage(ctx context.Context, galleryID int64, file *multipart.FileHeader, caption string) (*entity.GalleryImage, error) {
	if _, err := srv.Get(ctx, galleryID); err != nil {
		return nil, err
	}

	stored, err := srv.pipeline.ProcessOne(ctx, file)
	if err != nil {
		return nil, err
	}

	image := &entity.GalleryImage{
		GalleryID: galleryID,
		ImagePath: stored.Key,
		Caption:   caption,
	}

	if err := srv.repo.AddImage(ctx, image); err != nil {
		if deleteErr := srv.fileStore.Delete(ctx, stored.Key); deleteErr != nil {
			srv.log(ctx).Warn("Failed to clean up stored image after insert failure",
				slog.String("key", stored.Key), slog.Any("error", deleteErr))
		}

		return nil, errors.Wrap(err, "failed to attach gallery image")
	}

	srv.log(ctx).Info("Gallery image added",
		slog.Int64("galleryID", galleryID), slog.String("key", stored.Key))

	return image, nil
}

// DeleteImage removes a single image row and its stored file.
func (srv *galleryService) DeleteImage(ctx context.Context, galleryID, imageID int64) error {
	gallery, err := srv.Get(ctx, galleryID)
	if err != nil {
		return err
	}

	var imagePath string
	for _, image := range gallery.Images {
		if image.ID == imageID {
			imagePath = image.ImagePath

			break
		}
	}
	if imagePath == "" {
		return errors.Wrap(domainerrors.ErrGalleryNotFound.WithMessage("gallery image not found"), "gallery image lookup failed")
	}

	if err := srv.repo.DeleteImage(ctx, galleryID, imageID); err != nil {
		return errors.Wrap(err, "failed to delete gallery image")
	}

	if err := srv.fileStore.Delete(ctx, imagePath); err != nil {
		srv.log(ctx).Warn("Failed to delete gallery image file",
			slog.String("key", imagePath), slog.Any("error", err))
	}

	return nil
}
