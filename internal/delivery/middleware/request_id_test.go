package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cityportal/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndEchoesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenID string
	handler := m.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientProvidedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := m.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

	logger := deliverycontext.GetLogger(c.Request().Context())
	assert.NotNil(t, logger)
}
