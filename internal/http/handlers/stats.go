package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats.Stats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /popular-destinations
func (h *Handler) PopularDestinations(c *gin.Context) {
	places, err := h.Svc.Stats.PopularDestinations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// POST /seed-data
func (h *Handler) SeedData(c *gin.Context) {
	res, err := h.Svc.Seed.SeedDefaults(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Database seeded successfully",
		"result":  res,
	})
}
