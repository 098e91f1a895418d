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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectLoginTransaction wires the transaction manager so the callback runs
// against a factory backed by the given user repository mock.
func expectLoginTransaction(t *testing.T, fx userServiceFixtures, userRepo *mockRepo.MockUserRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(userRepo)

			return fn(factory)
		})
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	stored := &entity.User{
		ID:           userID,
		Name:         "Administrator",
		Email:        "admin@pitt.com",
		PasswordHash: "$2a$10$hash",
	}

	loginRepo := mockRepo.NewMockUserRepository(t)
	loginRepo.EXPECT().
		FindByEmail(ctx, "admin@pitt.com").
		Return(stored, nil)
	expectLoginTransaction(t, fx, loginRepo)

	fx.hasher.EXPECT().Check("admin123", stored.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(userID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@pitt.com",
		Password: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	loginRepo := mockRepo.NewMockUserRepository(t)
	loginRepo.EXPECT().
		FindByEmail(ctx, "nobody@pitt.com").
		Return(nil, repository.ErrUserNotFound)
	expectLoginTransaction(t, fx, loginRepo)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@pitt.com",
		Password: "admin123",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	// The response must not reveal whether the account exists.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@pitt.com",
		PasswordHash: "$2a$10$hash",
	}

	loginRepo := mockRepo.NewMockUserRepository(t)
	loginRepo.EXPECT().
		FindByEmail(ctx, "admin@pitt.com").
		Return(stored, nil)
	expectLoginTransaction(t, fx, loginRepo)

	fx.hasher.EXPECT().Check("wrong", stored.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@pitt.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "admin@pitt.com"}, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "admin@pitt.com", user.Email)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
