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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// documentServiceFixtures holds all test dependencies for document service tests.
type documentServiceFixtures struct {
	service   usecase.DocumentUsecase
	txManager *mockRepo.MockTransactionManager
	repo      *mockRepo.MockDocumentRepository
	fileStore *mockSvc.MockFileStore
}

func createTestDocumentService(t *testing.T) documentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)

	service := NewDocumentService(DocumentServiceParams{
		TxManager: txManager,
		Repo:      repo,
		FileStore: fileStore,
		Logger:    newDiscardLogger(),
	})

	return documentServiceFixtures{
		service:   service,
		txManager: txManager,
		repo:      repo,
		fileStore: fileStore,
	}
}

// expectDocumentTransaction runs the transaction callback against a factory
// backed by the given twin-city and document repository mocks.
func expectDocumentTransaction(t *testing.T, fx documentServiceFixtures, twinCities *mockRepo.MockTwinCityRepository, documents *mockRepo.MockDocumentRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewTwinCityRepository().Return(twinCities)
			factory.EXPECT().NewDocumentRepository().Return(documents).Maybe()

			return fn(factory)
		})
}

func TestDocumentService_RegisterExternal_Success(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	twinCities := mockRepo.NewMockTwinCityRepository(t)
	twinCities.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.TwinCity{ID: 3, Name: "Halle"}, nil)

	documents := mockRepo.NewMockDocumentRepository(t)
	documents.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Run(func(_ context.Context, document *entity.Document) {
			document.ID = 42
		}).
		Return(nil)

	expectDocumentTransaction(t, fx, twinCities, documents)

	document, err := fx.service.RegisterExternal(ctx, &usecase.ExternalDocumentInput{
		ExternalURL:     "https://archive.example.org/item/17",
		TwinCityID:      3,
		Title:           "City Chronicle",
		Author:          "J. Dole",
		PublicationYear: 1987,
		Category:        "history",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), document.ID)
	assert.Equal(t, entity.DocumentKindExternal, document.Kind)
	assert.Empty(t, document.FilePath)
}

func TestDocumentService_RegisterExternal_EnumeratesMissingFields(t *testing.T) {
	fx := createTestDocumentService(t)

	_, err := fx.service.RegisterExternal(context.Background(), &usecase.ExternalDocumentInput{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t,
		"missing required fields: external_url, twin_city_id, title, author, publication_year, category",
		appErr.Message())
}

func TestDocumentService_RegisterExternal_SingleMissingField(t *testing.T) {
	fx := createTestDocumentService(t)

	_, err := fx.service.RegisterExternal(context.Background(), &usecase.ExternalDocumentInput{
		TwinCityID:      3,
		Title:           "City Chronicle",
		Author:          "J. Dole",
		PublicationYear: 1987,
		Category:        "history",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "external_url is required", appErr.Message())
}

func TestDocumentService_RegisterExternal_MissingTwinCity(t *testing.T) {
	fx := createTestDocumentService(t)

	_, err := fx.service.RegisterExternal(context.Background(), &usecase.ExternalDocumentInput{
		ExternalURL:     "https://archive.example.org/chronicle",
		Title:           "City Chronicle",
		Author:          "J. Dole",
		PublicationYear: 1987,
		Category:        "history",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "twin_city_id is required", appErr.Message())
}

func TestDocumentService_Upload_Success(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	headers := buildFileHeaders(t, testFile{
		name:        "chronicle.pdf",
		contentType: "application/pdf",
		content:     "pdf bytes",
	})

	fx.fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return(nil)

	twinCities := mockRepo.NewMockTwinCityRepository(t)
	twinCities.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.TwinCity{ID: 3}, nil)

	documents := mockRepo.NewMockDocumentRepository(t)
	documents.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Return(nil)

	expectDocumentTransaction(t, fx, twinCities, documents)

	document, err := fx.service.Upload(ctx, &usecase.UploadDocumentInput{
		Title:           "City Chronicle",
		Author:          "J. Dole",
		PublicationYear: 1987,
		Category:        "history",
		TwinCityID:      3,
	}, headers[0])

	require.NoError(t, err)
	assert.Equal(t, entity.DocumentKindPhysical, document.Kind)
	assert.True(t, strings.HasPrefix(document.FilePath, "documents/"))
	assert.True(t, strings.HasSuffix(document.FilePath, "-chronicle.pdf"))
}

func TestDocumentService_Upload_RejectsExtension(t *testing.T) {
	fx := createTestDocumentService(t)

	headers := buildFileHeaders(t, testFile{
		name:        "payload.exe",
		contentType: "application/octet-stream",
		content:     "MZ",
	})

	// No Save expectation: nothing may be persisted for a rejected file.
	_, err := fx.service.Upload(context.Background(), &usecase.UploadDocumentInput{
		Title:      "x",
		Author:     "y",
		TwinCityID: 3,
	}, headers[0])

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), `extension "exe"`)
}

func TestDocumentService_Upload_CleansUpOnUnknownTwinCity(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	headers := buildFileHeaders(t, testFile{
		name:        "chronicle.pdf",
		contentType: "application/pdf",
		content:     "pdf bytes",
	})

	var storedKey string
	fx.fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Run(func(_ context.Context, key string, _ string, _ io.Reader) {
			storedKey = key
		}).
		Return(nil)

	twinCities := mockRepo.NewMockTwinCityRepository(t)
	twinCities.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrTwinCityNotFound)

	documents := mockRepo.NewMockDocumentRepository(t)
	expectDocumentTransaction(t, fx, twinCities, documents)

	fx.fileStore.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storedKey, key)

			return nil
		})

	_, err := fx.service.Upload(ctx, &usecase.UploadDocumentInput{
		Title:      "City Chronicle",
		Author:     "J. Dole",
		TwinCityID: 99,
	}, headers[0])

	require.Error(t, err)
}

func TestDocumentService_Delete_RemovesPhysicalFile(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Document{
			ID:       7,
			Kind:     entity.DocumentKindPhysical,
			FilePath: "documents/123-chronicle.pdf",
		}, nil)
	fx.repo.EXPECT().Delete(ctx, int64(7)).Return(nil)
	fx.fileStore.EXPECT().Delete(ctx, "documents/123-chronicle.pdf").Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 7))
}

func TestDocumentService_Delete_ExternalKeepsNoFile(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, int64(8)).
		Return(&entity.Document{
			ID:          8,
			Kind:        entity.DocumentKindExternal,
			ExternalURL: "https://archive.example.org/item/17",
		}, nil)
	fx.repo.EXPECT().Delete(ctx, int64(8)).Return(nil)

	// No file store expectation: external entries own no stored file.
	require.NoError(t, fx.service.Delete(ctx, 8))
}
