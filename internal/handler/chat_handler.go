package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/services"
)

type ChatHandler struct {
	chat  *services.ChatService
	media *services.MediaService
}

func NewChatHandler(chat *services.ChatService, media *services.MediaService) *ChatHandler {
	return &ChatHandler{chat: chat, media: media}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID := c.GetString("user_id")
	reply, err := h.chat.SendMessage(c.Request.Context(), userID, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

type quickReplyRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title"`
}

func (h *ChatHandler) QuickReply(c *gin.Context) {
	var req quickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if req.Title == "" {
		req.Title = req.Slug
	}

	userID := c.GetString("user_id")
	reply, err := h.chat.SendQuickReply(c.Request.Context(), userID, req.Slug, req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) UploadAttachment(c *gin.Context) {
	userID := c.GetString("user_id")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	fileMsg, err := h.media.Upload(
		c.Request.Context(), file, header.Size,
		header.Header.Get("Content-Type"),
		header.Filename,
		userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	reply, err := h.chat.SendFileMessage(c.Request.Context(), userID, fileMsg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store attachment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"file": fileMsg, "reply": reply})
}

func (h *ChatHandler) History(c *gin.Context) {
	userID := c.GetString("user_id")
	messages, err := h.chat.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
