package websocket

import (
	"context"
	"net/http"
	"strconv"

	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// UserChecker reports whether a user exists.
type UserChecker interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// HandlerConfig tunes accepted connections.
type HandlerConfig struct {
	AllowedOrigins []string
	SendBuffer     int
}

// Handler for WebSocket connections
type Handler struct {
	registry   *Registry
	users      UserChecker
	upgrader   websocket.Upgrader
	sendBuffer int
	logger     zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *Registry, users UserChecker, config HandlerConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		registry:   registry,
		users:      users,
		upgrader:   newUpgrader(config.AllowedOrigins),
		sendBuffer: config.SendBuffer,
		logger:     logger,
	}
}

// HandleConnection upgrades GET /ws?userId=N and registers the connection as
// the user's current push channel.
func (h *Handler) HandleConnection(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID").WithField("userId")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exists, err := h.users.Exists(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("userID", userID).
			Msg("Failed to check user before upgrade")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("userID", userID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.registry, conn, userID, h.sendBuffer, h.logger)
	if previous := h.registry.Register(userID, client); previous != nil {
		h.logger.Debug().
			Int64("userID", userID).
			Msg("Superseded earlier channel")
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Int64("userID", userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
