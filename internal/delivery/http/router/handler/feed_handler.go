package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agentverse/internal/delivery/http/response"
	"agentverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler holds dependencies for feed handlers.
type FeedHandler struct {
	uc     usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{uc: uc, logger: logger}
}

// List returns the most recent posts, newest first.
func (h *FeedHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	posts, err := h.uc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Feed retrieved successfully")
}

// Create publishes a new post authored by the caller.
func (h *FeedHandler) Create(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	post, err := h.uc.CreatePost(c.Request().Context(), principalID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// Like adds the caller to the post's liker set. Idempotent.
func (h *FeedHandler) Like(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Like(c.Request().Context(), c.Param("id"), principalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post liked")
}

// Unlike removes the caller from the post's liker set. Idempotent.
func (h *FeedHandler) Unlike(c echo.Context) error {
	principalID, ok := principalIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Unlike(c.Request().Context(), c.Param("id"), principalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post unliked")
}
