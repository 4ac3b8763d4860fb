package handler

import (
	"log/slog"
	"net/http"

	"agentverse/internal/delivery/http/response"
	"agentverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FriendHandler holds dependencies for friend request handlers.
type FriendHandler struct {
	uc     usecase.FriendUsecase
	logger *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler, injected by Fx.
func NewFriendHandler(uc usecase.FriendUsecase, logger *slog.Logger) *FriendHandler {
	return &FriendHandler{uc: uc, logger: logger}
}

// Send creates a pending friend request from the caller.
func (h *FriendHandler) Send(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.SendFriendRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	request, err := h.uc.SendRequest(c.Request().Context(), principalID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Friend request sent")
}

// Accept marks the request accepted.
func (h *FriendHandler) Accept(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Accept(c.Request().Context(), c.Param("id"), principalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend request accepted")
}

// ListPending returns the pending requests addressed to the caller.
func (h *FriendHandler) ListPending(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.ListPending(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Pending friend requests retrieved")
}
