package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoparts-api/internal/models"
)

type ReviewHandler struct {
	repo ReviewStore
}

func NewReviewHandler(repo ReviewStore) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

// CreateReview POST /reviews. Sin validación de rango ni duplicados.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "All fields are required.")
		return
	}

	review := &models.Review{
		Name:   input.Name,
		Email:  input.Email,
		Rating: input.Rating,
		Review: input.Review,
	}
	if err := h.repo.Create(c.Request.Context(), review); err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Review added successfully",
		"reviewId": review.ID,
	})
}

// ListReviews GET /reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
