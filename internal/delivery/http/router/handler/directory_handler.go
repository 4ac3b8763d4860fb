package handler

import (
	"net/http"

	"agentverse/internal/delivery/http/response"
	"agentverse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DirectoryHandler serves the static agent directory and external feed.
type DirectoryHandler struct {
	uc usecase.DirectoryUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// Agents lists the registered external agents. Always 200, possibly empty.
func (h *DirectoryHandler) Agents(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Agents(c.Request().Context()), "Directory retrieved successfully")
}

// ExternalFeed lists the static external feed items. Always 200, possibly empty.
func (h *DirectoryHandler) ExternalFeed(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ExternalFeed(c.Request().Context()), "External feed retrieved successfully")
}
