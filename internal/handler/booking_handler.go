package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"foodbridge/internal/middleware"
	"foodbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	svc           *service.BookingService
	notifications *service.NotificationService
}

func NewBookingHandler(svc *service.BookingService, notifications *service.NotificationService) *BookingHandler {
	return &BookingHandler{svc: svc, notifications: notifications}
}

func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.svc.ListForUser(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Transition advances a booking through its status machine and notifies the
// counterparty of the actor.
func (h *BookingHandler) Transition(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Transition(uint(id), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	actor := middleware.GetUserID(c)
	recipient := b.BuyerID
	if actor == b.BuyerID {
		recipient = b.DonorID
	}
	_ = h.notifications.Append(recipient,
		fmt.Sprintf("Booking %s: %s", b.Status, b.Listing.Name), "📦")
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
