package handler

import (
	"net/http"
	"strconv"
	"time"

	"foodbridge/internal/domain"
	"foodbridge/internal/middleware"
	"foodbridge/internal/models"
	"foodbridge/internal/service"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	svc       *service.ListingService
	checkout  *service.CheckoutService
	favorites *service.FavoriteService
}

func NewListingHandler(svc *service.ListingService, checkout *service.CheckoutService, favorites *service.FavoriteService) *ListingHandler {
	return &ListingHandler{svc: svc, checkout: checkout, favorites: favorites}
}

type listingRequest struct {
	Name           string    `json:"name" binding:"required"`
	Description    string    `json:"description"`
	Quantity       string    `json:"quantity" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	PickupTime     time.Time `json:"pickup_time" binding:"required"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	PhotoURL       string    `json:"photo_url"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	SafetyVerified bool      `json:"safety_verified"`
}

func (r listingRequest) input() service.ListingInput {
	return service.ListingInput{
		Name:           r.Name,
		Description:    r.Description,
		Quantity:       r.Quantity,
		Location:       r.Location,
		PickupTime:     r.PickupTime,
		Price:          r.Price,
		Category:       r.Category,
		PhotoURL:       r.PhotoURL,
		ThumbnailURL:   r.ThumbnailURL,
		SafetyVerified: r.SafetyVerified,
	}
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Create(middleware.GetUserID(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": l})
}

func (h *ListingHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Update(uint(id), middleware.GetUserID(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": l})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.svc.Delete(uint(id), middleware.GetUserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Browse returns the available-listing feed, filtered by category, location,
// price band (free|low|mid|high) and free-text search.
func (h *ListingHandler) Browse(c *gin.Context) {
	filter := domain.ListingFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Price:    c.Query("price"),
		Query:    c.Query("q"),
	}
	list, err := h.svc.ListAvailable(filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": list})
}

func (h *ListingHandler) Mine(c *gin.Context) {
	list, err := h.svc.ListByDonor(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": list})
}

func (h *ListingHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	l, err := h.svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": l})
}

// Categories serves the fixed category list for the post-food form and the
// browse filters.
func (h *ListingHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.FoodCategories})
}

// Locations serves the distinct pickup locations for the browse filter.
func (h *ListingHandler) Locations(c *gin.Context) {
	locs, err := h.svc.Locations()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locs})
}

type bookRequest struct {
	Quantity string `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

// Book runs the whole booking sequence for the listing and returns the
// created booking together with the conversation to continue in.
func (h *ListingHandler) Book(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.checkout.ConfirmBooking(middleware.GetUserID(c), uint(id), req.Quantity, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":         receipt.Booking,
		"conversation_id": receipt.Conversation.ID,
	})
}

// ToggleFavorite bookmarks or un-bookmarks the listing for the caller.
func (h *ListingHandler) ToggleFavorite(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	added, err := h.favorites.Toggle(middleware.GetUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": added})
}

func (h *ListingHandler) Favorites(c *gin.Context) {
	list, err := h.favorites.ListByUser(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": list})
}
