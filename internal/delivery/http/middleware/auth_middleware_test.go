package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/service"
	mockSvc "cityportal/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	return reached, handler(c)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	reached, err := invokeAuth(t, tokenSvc, "")

	assert.False(t, reached)
	require.ErrorIs(t, err, domainerrors.ErrTokenNotProvided)
	assert.Equal(t, "token not provided", domainerrors.ErrTokenNotProvided.Message())
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	for _, header := range []string{"Bearer", "Bearer a b", "justonetoken"} {
		reached, err := invokeAuth(t, tokenSvc, header)

		assert.False(t, reached, header)
		require.ErrorIs(t, err, domainerrors.ErrTokenMalformed, header)
	}
	assert.Equal(t, "malformed token", domainerrors.ErrTokenMalformed.Message())
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	reached, err := invokeAuth(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	require.ErrorIs(t, err, domainerrors.ErrTokenWrongScheme)
	assert.Equal(t, "invalid token format", domainerrors.ErrTokenWrongScheme.Message())
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().Verify("tok").Return(userID, nil)

	reached, err := invokeAuth(t, tokenSvc, "bearer tok")

	require.NoError(t, err)
	assert.True(t, reached)
}

func TestAuthenticate_VerificationFailure(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("garbage").Return(uuid.Nil, service.ErrInvalidToken)

	reached, err := invokeAuth(t, tokenSvc, "Bearer garbage")

	assert.False(t, reached)
	require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Equal(t, "invalid token", domainerrors.ErrTokenInvalid.Message())
}

func TestAuthenticate_SetsUserID(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().Verify("tok").Return(userID, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		assert.Equal(t, userID, c.Get(ContextKeyUserID))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
}
