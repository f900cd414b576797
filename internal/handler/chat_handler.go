package handler

import (
	"net/http"
	"strconv"

	"foodbridge/internal/middleware"
	"foodbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc  *service.ConversationService
	auth *service.AuthService
}

func NewChatHandler(svc *service.ConversationService, auth *service.AuthService) *ChatHandler {
	return &ChatHandler{svc: svc, auth: auth}
}

func (h *ChatHandler) List(c *gin.Context) {
	list, err := h.svc.ListForUser(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": list})
}

func (h *ChatHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	conv, err := h.svc.Get(uint(id), middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv})
}

type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sender, err := h.auth.GetUser(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	m, err := h.svc.SendText(uint(id), sender, req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": m})
}
