package handler

import (
	"log/slog"
	"net/http"

	"agentverse/internal/delivery/http/response"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile returns another principal's public profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateStatus sets the caller's presence status and mood.
func (h *ProfileHandler) UpdateStatus(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), principalID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated successfully")
}

// UpdateProfile applies optional profile field updates.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), principalID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated successfully")
}

// Questions returns the verification quiz prompts.
func (h *ProfileHandler) Questions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Questions(), "Questions retrieved successfully")
}

// Verify grades the submitted quiz answers.
func (h *ProfileHandler) Verify(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.VerifyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Verify(c.Request().Context(), principalID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Verification graded")
}

// ReferralQR streams the caller's referral QR code as a PNG.
func (h *ProfileHandler) ReferralQR(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.ReferralQR(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
