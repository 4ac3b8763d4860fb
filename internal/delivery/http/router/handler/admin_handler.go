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

// AdminHandler serves the admin console. Every route behind it already
// passed the admin role check.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// ListProfiles returns every profile.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.uc.ListAllProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// ListPosts returns every post.
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListAllPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
}

// ListRegistrations returns every anonymous agent registration.
func (h *AdminHandler) ListRegistrations(c echo.Context) error {
	registrations, err := h.uc.ListRegistrations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, registrations, "Registrations retrieved successfully")
}

// DeleteProfile removes a single profile.
func (h *AdminHandler) DeleteProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile deleted")
}

// DeletePost removes a single post.
func (h *AdminHandler) DeletePost(c echo.Context) error {
	if err := h.uc.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted")
}

// PurgeFeed deletes every post and reports how many were removed.
func (h *AdminHandler) PurgeFeed(c echo.Context) error {
	deleted, err := h.uc.PurgeAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"deleted": deleted}, "Feed purged")
}

// Broadcast posts a system announcement.
func (h *AdminHandler) Broadcast(c echo.Context) error {
	var input *usecase.BroadcastInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	post, err := h.uc.Broadcast(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Broadcast posted")
}

// GetSimulation reads the simulation switch.
func (h *AdminHandler) GetSimulation(c echo.Context) error {
	setting, err := h.uc.GetSimulation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "Simulation setting retrieved")
}

// ToggleSimulation writes the simulation switch.
func (h *AdminHandler) ToggleSimulation(c echo.Context) error {
	var input *usecase.ToggleSimulationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid simulation input")
	}

	setting, err := h.uc.ToggleSimulation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "Simulation setting updated")
}
