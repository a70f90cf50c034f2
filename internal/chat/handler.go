// File: internal/chat/handler.go
package chat

import (
	"errors"

	"uniconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for chat handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new chat handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for chat operations. All chat routes
// require authentication.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/chat", authMW)
	{
		group.POST("/messages", h.sendMessage)
		group.GET("/partners", h.getPartners)
		group.GET("/conversations/:userId", h.getConversation)
	}
}

func (h *Handler) sendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	message, err := h.service.SendMessage(c.Request.Context(), callerID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Message sent.", ToMessageResponse(message))
}

func (h *Handler) getConversation(c *gin.Context) {
	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid user ID."))
		return
	}

	callerID := common.GetUserIDFromContext(c)
	messages, err := h.service.GetConversation(c.Request.Context(), callerID, otherID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	common.RespondOK(c, "Conversation retrieved.", responses)
}

func (h *Handler) getPartners(c *gin.Context) {
	callerID := common.GetUserIDFromContext(c)
	partners, err := h.service.GetPartners(c.Request.Context(), callerID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Chat partners retrieved.", partners)
}
