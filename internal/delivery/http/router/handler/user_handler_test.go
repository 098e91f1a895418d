package handler

import (
	"context"
	"net/http"
	"testing"

	"cityportal/internal/domain/entity"
	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userUsecaseStub struct {
	loginInput *usecase.LoginInput
}

func (s *userUsecaseStub) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.loginInput = input

	return &usecase.LoginOutput{
		User:  &entity.User{ID: uuid.New(), Email: input.Email},
		Token: "signed-token",
	}, nil
}

func (s *userUsecaseStub) GetProfile(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, nil
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@pitt.com","password":"admin123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.loginInput)
	assert.Equal(t, "admin@pitt.com", uc.loginInput.Email)
	assert.Contains(t, rec.Body.String(), "signed-token")

	// The password hash never serializes into the response envelope.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Login_NullBody(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, newDiscardLogger())

	// "null" binds without error; validation must still produce a clean
	// field-level 400 instead of reaching the usecase.
	c, _ := newJSONContext(t, http.MethodPost, "/auth/login", "null")

	err := h.Login(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "field Email failed validation on tag required", appErr.Message())
	assert.Nil(t, uc.loginInput)
}
