package handler

import (
	"net/http"
	"strconv"

	"foodbridge/internal/middleware"
	"foodbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

type reviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	toUserID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.svc.Record(middleware.GetUserID(c), uint(toUserID), req.Rating, req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": r})
}

// Rating returns a user's average received rating. rated=false means the user
// has no reviews yet; the average must not be read then.
func (h *ReviewHandler) Rating(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	avg, count, err := h.svc.AverageRating(uint(userID))
	if err != nil {
		fail(c, err)
		return
	}
	if count == 0 {
		c.JSON(http.StatusOK, gin.H{"rated": false, "count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rated": true, "average": avg, "count": count})
}

func (h *ReviewHandler) ListForUser(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	list, err := h.svc.ListForUser(uint(userID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}
