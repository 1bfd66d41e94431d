package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"chatdeck.app/backend/internal/http/dto"
	"chatdeck.app/backend/internal/http/middleware"
	"chatdeck.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ChatroomHandler struct {
	chatroomService service.ChatroomService
	messageService  service.MessageService
}

func NewChatroomHandler(chatroomService service.ChatroomService, messageService service.MessageService) *ChatroomHandler {
	return &ChatroomHandler{
		chatroomService: chatroomService,
		messageService:  messageService,
	}
}

func (h *ChatroomHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)

	var req dto.CreateChatroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chatroom, err := h.chatroomService.Create(ctx, user.ID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create chatroom"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatroomResponse(chatroom))
}

func (h *ChatroomHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)

	chatrooms, err := h.chatroomService.List(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list chatrooms"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChatroomListResponse(chatrooms))
}

func (h *ChatroomHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)
	chatroomID, ok := pathID(c, "id")
	if !ok {
		return
	}

	chatroom, err := h.chatroomService.Get(ctx, user.ID, chatroomID)
	if err != nil {
		respondChatroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChatroomResponse(chatroom))
}

func (h *ChatroomHandler) GetWithMessages(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)
	chatroomID, ok := pathID(c, "id")
	if !ok {
		return
	}

	chatroom, messages, err := h.chatroomService.GetWithMessages(ctx, user.ID, chatroomID)
	if err != nil {
		respondChatroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatroomDetailResponse{
		Chatroom: dto.ToChatroomResponse(chatroom),
		Messages: dto.ToMessageResponses(messages),
	})
}

// SendMessage accepts the message and returns 202: the response is
// generated asynchronously and shows up on the message once a worker
// processes the task.
func (h *ChatroomHandler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)
	chatroomID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Send(ctx, service.SendMessageParams{
		ChatroomID: chatroomID,
		SenderID:   user.ID,
		Text:       req.Text,
	})
	if err != nil {
		respondChatroomError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToMessageResponse(message))
}

// GetMessage lets clients poll a message accepted earlier until its
// status flips to processed and the response is present.
func (h *ChatroomHandler) GetMessage(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)
	messageID, ok := pathID(c, "messageID")
	if !ok {
		return
	}

	message, err := h.messageService.Get(ctx, user.ID, messageID)
	if err != nil {
		respondChatroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(message))
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondChatroomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChatroomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "chatroom not found"})
	case errors.Is(err, service.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		slog.ErrorContext(c.Request.Context(), "chatroom request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
