package handlers

import (
	"net/http"
	"strconv"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// ReviewCreatedMessage is the confirmation returned by POST /reviews/.
const ReviewCreatedMessage = "Review created successfully"

// POST /reviews/
func (h *Handler) CreateReview(c *gin.Context) {
	var in models.ReviewInput
	if !BindJSONOrError(c, &in) {
		return
	}
	rv, _, err := h.Svc.Reviews.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": ReviewCreatedMessage,
		"review":  rv,
	})
}

// GET /reviews/place/:place_id
func (h *Handler) ListPlaceReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("place_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_place_id", "place_id must be an integer", gin.H{"field": "place_id"})
		return
	}
	reviews, err := h.Svc.Reviews.ListForPlace(c.Request.Context(), domain.ID(id))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
