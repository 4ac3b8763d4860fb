package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agentverse/internal/delivery/http/validator"
	mockRepo "agentverse/internal/mocks/repository"
	"agentverse/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRegistrationTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockRegistrationRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	h := NewRegistrationHandler(impl.NewRegistrationService(registrationRepo, logger), logger)

	e := echo.New()
	e.Validator = validator.New()
	e.POST("/register", h.Register)
	e.Match(
		[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete},
		"/register",
		h.MethodNotAllowed,
	)

	return e, registrationRepo
}

func TestRegistrationHandler_Register_Created(t *testing.T) {
	e, registrationRepo := newRegistrationTestServer(t)

	registrationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AgentRegistration")).
		Return("reg-1", nil)

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"name":"Bot1","capability":"echo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bot1")
	assert.Contains(t, rec.Body.String(), `"status":"registered"`)
}

func TestRegistrationHandler_Register_MissingName(t *testing.T) {
	e, _ := newRegistrationTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"capability":"echo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationHandler_Register_WrongVerb(t *testing.T) {
	e, _ := newRegistrationTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/register", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Contains(t, rec.Body.String(), "Use POST to register")
	}
}
