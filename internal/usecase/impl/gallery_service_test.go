package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/repository"
	mockRepo "cityportal/internal/mocks/repository"
	mockSvc "cityportal/internal/mocks/service"
	"cityportal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// galleryServiceFixtures holds all test dependencies for gallery service tests.
type galleryServiceFixtures struct {
	service   usecase.GalleryUsecase
	repo      *mockRepo.MockGalleryRepository
	fileStore *mockSvc.MockFileStore
}

func createTestGalleryService(t *testing.T) galleryServiceFixtures {
	repo := mockRepo.NewMockGalleryRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)

	service := NewGalleryService(GalleryServiceParams{
		Repo:      repo,
		FileStore: fileStore,
		Logger:    newDiscardLogger(),
	})

	return galleryServiceFixtures{
		service:   service,
		repo:      repo,
		fileStore: fileStore,
	}
}

func TestGalleryService_AddImage_Success(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.Gallery{ID: 7, Title: "Old Town"}, nil)
	fx.fileStore.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return(nil)
	fx.repo.EXPECT().AddImage(mock.Anything, mock.AnythingOfType("*entity.GalleryImage")).
		Run(func(_ context.Context, image *entity.GalleryImage) {
			image.ID = 3
		}).
		Return(nil)

	files := buildFileHeaders(t, testFile{name: "skyline.png", contentType: "image/png", content: "png-bytes"})
	image, err := fx.service.AddImage(context.Background(), 7, files[0], "evening skyline")

	require.NoError(t, err)
	assert.Equal(t, int64(3), image.ID)
	assert.Equal(t, int64(7), image.GalleryID)
	assert.Equal(t, "evening skyline", image.Caption)
	assert.True(t, strings.HasPrefix(image.ImagePath, "galleries/"))
}

func TestGalleryService_AddImage_RejectsNonImage(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.Gallery{ID: 7}, nil)

	files := buildFileHeaders(t, testFile{name: "notes.pdf", contentType: "application/pdf", content: "%PDF"})
	_, err := fx.service.AddImage(context.Background(), 7, files[0], "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	// Nothing persisted: no Save expectation was registered.
}

func TestGalleryService_AddImage_UnknownGallery(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(99)).
		Return(nil, repository.ErrGalleryNotFound)

	files := buildFileHeaders(t, testFile{name: "skyline.png", contentType: "image/png", content: "png"})
	_, err := fx.service.AddImage(context.Background(), 99, files[0], "")

	require.ErrorIs(t, err, domainerrors.ErrGalleryNotFound)
}

func TestGalleryService_AddImage_CleansUpOnInsertFailure(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.Gallery{ID: 7}, nil)

	var storedKey string
	fx.fileStore.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(_ context.Context, key string, _ string, _ io.Reader) {
			storedKey = key
		}).
		Return(nil)
	fx.repo.EXPECT().AddImage(mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))
	fx.fileStore.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, key string) {
			assert.Equal(t, storedKey, key)
		}).
		Return(nil)

	files := buildFileHeaders(t, testFile{name: "skyline.png", contentType: "image/png", content: "png"})
	_, err := fx.service.AddImage(context.Background(), 7, files[0], "")

	require.Error(t, err)
}

func TestGalleryService_DeleteImage_RemovesRowAndFile(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.Gallery{
			ID: 7,
			Images: []entity.GalleryImage{
				{ID: 3, GalleryID: 7, ImagePath: "galleries/1700000000000-424242.png"},
			},
		}, nil)
	fx.repo.EXPECT().DeleteImage(mock.Anything, int64(7), int64(3)).Return(nil)
	fx.fileStore.EXPECT().Delete(mock.Anything, "galleries/1700000000000-424242.png").Return(nil)

	require.NoError(t, fx.service.DeleteImage(context.Background(), 7, 3))
}

func TestGalleryService_DeleteImage_UnknownImage(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.Gallery{ID: 7}, nil)

	err := fx.service.DeleteImage(context.Background(), 7, 3)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "gallery image not found", appErr.Message())
}

func TestGalleryService_Delete_CleansUpImageFiles(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.repo.EXPECT().FindByID(mock.Anything, int64(7)).
		Return(&entity.Gallery{
			ID: 7,
			Images: []entity.GalleryImage{
				{ID: 1, ImagePath: "galleries/a.png"},
				{ID: 2, ImagePath: "galleries/b.png"},
			},
		}, nil)
	fx.repo.EXPECT().Delete(mock.Anything, int64(7)).Return(nil)
	fx.fileStore.EXPECT().Delete(mock.Anything, "galleries/a.png").Return(nil)
	fx.fileStore.EXPECT().Delete(mock.Anything, "galleries/b.png").Return(nil)

	require.NoError(t, fx.service.Delete(context.Background(), 7))
}
