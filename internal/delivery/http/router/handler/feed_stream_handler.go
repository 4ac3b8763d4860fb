package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"agentverse/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// FeedStreamHandler streams live feed windows over a WebSocket.
type FeedStreamHandler struct {
	uc       usecase.FeedUsecase
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewFeedStreamHandler is the constructor for FeedStreamHandler, injected by Fx.
func NewFeedStreamHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedStreamHandler {
	return &FeedStreamHandler{
		uc: uc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Tokens ride the query string, not cookies; origin adds nothing.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Stream upgrades the connection and pushes the full ordered feed
// window as JSON on every change. Each delivery replaces the previous
// one. The server-side listener is released when the client disconnects.
func (h *FeedStreamHandler) Stream(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade websocket")
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	deliveries, err := h.uc.Subscribe(ctx, limit)
	if err != nil {
		h.logger.Error("failed to open feed subscription", slog.Any("error", err))
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscription failed"),
			time.Now().Add(streamWriteTimeout))

		return nil
	}

	// Read pump: discard client frames, cancel the subscription on close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case window, ok := <-deliveries:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(streamWriteTimeout))

				return nil
			}

			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(window); err != nil {
				h.logger.Debug("feed stream write failed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteTimeout)); err != nil {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}
