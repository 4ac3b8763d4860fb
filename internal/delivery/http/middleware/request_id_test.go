package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "agentverse/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRequestIDTestServer(handler echo.HandlerFunc) *echo.Echo {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	e.GET("/", handler, m.Process)

	return e
}

func TestRequestIDMiddleware_EchoesIncomingID(t *testing.T) {
	var seenID string
	e := newRequestIDTestServer(func(c echo.Context) error {
		seenID = deliverycontext.RequestID(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seenID)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesIDAndScopedLogger(t *testing.T) {
	var seenID string
	var seenLogger *slog.Logger
	e := newRequestIDTestServer(func(c echo.Context) error {
		ctx := c.Request().Context()
		seenID = deliverycontext.RequestID(ctx)
		seenLogger = deliverycontext.Logger(ctx, nil)

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotNil(t, seenLogger)
}
