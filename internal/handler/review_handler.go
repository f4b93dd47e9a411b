package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	OriginalQuery string `json:"original_query" binding:"required"`
	BotResponse   string `json:"bot_response"`
	Feedback      string `json:"feedback"`
	PhoneNumber   string `json:"phone_number"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	review, err := h.reviews.Create(
		c.Request.Context(),
		c.GetString("user_id"),
		req.PhoneNumber,
		req.OriginalQuery,
		req.BotResponse,
		req.Feedback,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit review request"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListMine(c *gin.Context) {
	reviews, err := h.reviews.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch review requests"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Admin

func (h *ReviewHandler) ListAll(c *gin.Context) {
	reviews, err := h.reviews.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch review requests"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type updateReviewRequest struct {
	Status        models.ReviewStatus `json:"status" binding:"required"`
	AdminResponse string              `json:"admin_response"`
}

func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err = h.reviews.UpdateStatus(c.Request.Context(), id, req.Status, c.GetString("user_id"), req.AdminResponse)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
