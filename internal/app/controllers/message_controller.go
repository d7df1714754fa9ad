package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// MessageController handles direct messaging endpoints
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// Send delivers a message to another organization
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or self message"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	message, err := c.messageService.Send(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// GetConversation retrieves the exchange with another organization
// @Summary Get a conversation
// @Description Retrieves all messages between the actor and another organization, oldest first. Opening the conversation marks messages addressed to the actor as read.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param organizationId path int true "Other organization ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Conversation retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/conversations/{organizationId} [get]
func (c *MessageController) GetConversation(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	otherID, ok := parseIDParam(ctx, "organizationId")
	if !ok {
		return
	}

	messages, err := c.messageService.GetConversation(ctx, actor, otherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// MarkRead marks a single message as read
// @Summary Mark a message read
// @Description Marks a message as read; only the receiver may do so. Idempotent.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse "Message marked read"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the receiver"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{id}/read [put]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.messageService.MarkRead(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessageResponse("Message marked as read"))
}

// UnreadCount reports how many unread messages the actor has
// @Summary Unread message count
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountResponse} "Count retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/unread-count [get]
func (c *MessageController) UnreadCount(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	count, err := c.messageService.UnreadCount(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UnreadCountResponse{Count: count}))
}
