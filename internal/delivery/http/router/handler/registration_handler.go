package handler

import (
	"log/slog"
	"net/http"

	"agentverse/internal/delivery/http/response"
	"agentverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationHandler serves the public, unauthenticated agent
// registration endpoint.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{uc: uc, logger: logger}
}

// Register records an anonymous agent self-registration.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var input *usecase.RegisterAgentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Agent registered successfully")
}

// MethodNotAllowed rejects every non-POST verb on the registration path.
func (h *RegistrationHandler) MethodNotAllowed(c echo.Context) error {
	return response.MethodNotAllowed(c, "METHOD_NOT_ALLOWED", "Use POST to register")
}
