package impl

import (
	"context"
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

// collaborationServiceFixtures holds all test dependencies for collaboration service tests.
type collaborationServiceFixtures struct {
	service   usecase.CollaborationUsecase
	txManager *mockRepo.MockTransactionManager
	repo      *mockRepo.MockCollaborationRepository
	fileStore *mockSvc.MockFileStore
}

func createTestCollaborationService(t *testing.T) collaborationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repo := mockRepo.NewMockCollaborationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)

	service := NewCollaborationService(CollaborationServiceParams{
		TxManager: txManager,
		Repo:      repo,
		FileStore: fileStore,
		Logger:    newDiscardLogger(),
	})

	return collaborationServiceFixtures{
		service:   service,
		txManager: txManager,
		repo:      repo,
		fileStore: fileStore,
	}
}

func expectCollaborationTransaction(t *testing.T, fx collaborationServiceFixtures, repo *mockRepo.MockCollaborationRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCollaborationRepository().Return(repo)

			return fn(factory)
		})
}

func TestCollaborationService_Submit_WithAttachments(t *testing.T) {
	fx := createTestCollaborationService(t)
	ctx := context.Background()

	headers := buildFileHeaders(t,
		testFile{name: "proposal.pdf", contentType: "application/pdf", content: "1"},
		testFile{name: "sketch.png", contentType: "image/png", content: "2"},
	)

	fx.fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil).
		Times(2)

	txRepo := mockRepo.NewMockCollaborationRepository(t)
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Collaboration")).
		Run(func(_ context.Context, collaboration *entity.Collaboration) {
			collaboration.ID = 11
		}).
		Return(nil)
	expectCollaborationTransaction(t, fx, txRepo)

	collaboration, err := fx.service.Submit(ctx, &usecase.SubmitCollaborationInput{
		Name:    "A. Visitor",
		Email:   "visitor@example.com",
		Subject: "Partnership",
		Message: "Hello",
	}, headers)

	require.NoError(t, err)
	assert.Equal(t, int64(11), collaboration.ID)
	assert.Equal(t, entity.CollaborationStatusPending, collaboration.Status)
	require.Len(t, collaboration.Attachments, 2)
	assert.Equal(t, "proposal.pdf", collaboration.Attachments[0].OriginalName)
}

func TestCollaborationService_Submit_WithoutAttachments(t *testing.T) {
	fx := createTestCollaborationService(t)
	ctx := context.Background()

	txRepo := mockRepo.NewMockCollaborationRepository(t)
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Collaboration")).
		Return(nil)
	expectCollaborationTransaction(t, fx, txRepo)

	collaboration, err := fx.service.Submit(ctx, &usecase.SubmitCollaborationInput{
		Name:    "A. Visitor",
		Email:   "visitor@example.com",
		Subject: "Partnership",
		Message: "Hello",
	}, nil)

	require.NoError(t, err)
	assert.Empty(t, collaboration.Attachments)
}

func TestCollaborationService_Submit_TooManyAttachments(t *testing.T) {
	fx := createTestCollaborationService(t)

	files := make([]testFile, 6)
	for i := range files {
		files[i] = testFile{name: "a.bin", contentType: "application/octet-stream", content: "x"}
	}

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitCollaborationInput{
		Name:    "A. Visitor",
		Email:   "visitor@example.com",
		Subject: "Partnership",
		Message: "Hello",
	}, buildFileHeaders(t, files...))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "too many files")
}

func TestCollaborationService_Submit_CleansUpOnInsertFailure(t *testing.T) {
	fx := createTestCollaborationService(t)
	ctx := context.Background()

	headers := buildFileHeaders(t,
		testFile{name: "proposal.pdf", contentType: "application/pdf", content: "1"},
	)

	fx.fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return(nil)

	txRepo := mockRepo.NewMockCollaborationRepository(t)
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Collaboration")).
		Return(assert.AnError)
	expectCollaborationTransaction(t, fx, txRepo)

	fx.fileStore.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Return(nil)

	_, err := fx.service.Submit(ctx, &usecase.SubmitCollaborationInput{
		Name:    "A. Visitor",
		Email:   "visitor@example.com",
		Subject: "Partnership",
		Message: "Hello",
	}, headers)

	require.Error(t, err)
}

func TestCollaborationService_UpdateStatus_Success(t *testing.T) {
	fx := createTestCollaborationService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		UpdateStatus(ctx, int64(5), entity.CollaborationStatusReviewed).
		Return(nil)
	fx.repo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Collaboration{ID: 5, Status: entity.CollaborationStatusReviewed}, nil)

	collaboration, err := fx.service.UpdateStatus(ctx, 5, "reviewed")

	require.NoError(t, err)
	assert.Equal(t, entity.CollaborationStatusReviewed, collaboration.Status)
}

func TestCollaborationService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestCollaborationService(t)

	_, err := fx.service.UpdateStatus(context.Background(), 5, "bogus")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "invalid status")
}

func TestCollaborationService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestCollaborationService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		UpdateStatus(ctx, int64(5), entity.CollaborationStatusArchived).
		Return(repository.ErrCollaborationNotFound)

	_, err := fx.service.UpdateStatus(ctx, 5, "archived")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestCollaborationService_List_RejectsUnknownStatusFilter(t *testing.T) {
	fx := createTestCollaborationService(t)

	_, err := fx.service.List(context.Background(), "unknown")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}
