package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/internal/service"
	"github.com/pageza/snapdish/backend/internal/types"
)

// MessageHandler handles transcript delivery requests
type MessageHandler struct {
	messengerService service.IMessengerService
	logger           *zap.Logger
}

// NewMessageHandler creates a new MessageHandler instance
func NewMessageHandler(messengerService service.IMessengerService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messengerService: messengerService,
		logger:           logger,
	}
}

// RegisterRoutes registers the message routes
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append(extra, h.Send)
	router.POST("/messages", handlers...)
}

// Send handles a single transcript delivery request
func (h *MessageHandler) Send(c *gin.Context) {
	requestID := uuid.New().String()

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "message is required"})
		return
	}

	outcome, err := h.messengerService.Send(c.Request.Context(), req.Message, req.PhoneNumber)
	if err != nil {
		h.logger.Error("message delivery failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	h.logger.Info("message delivery succeeded",
		zap.String("request_id", requestID),
		zap.String("state", string(outcome.State)))

	resp := types.SendMessageResponse{Status: outcome.State}
	if outcome.ID != "" {
		resp.ID = &outcome.ID
	}
	c.JSON(http.StatusOK, resp)
}
