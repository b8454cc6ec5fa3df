package handlers

import (
	"net/http"

	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/geo"

	"github.com/gin-gonic/gin"
)

const defaultPlacesLimit = 100

// POST /places/
func (h *Handler) CreatePlace(c *gin.Context) {
	var in models.PlaceInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.Svc.Places.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /places/?skip=&limit=&category=
func (h *Handler) ListPlaces(c *gin.Context) {
	q, ok := listQuery(c, defaultPlacesLimit, "category")
	if !ok {
		return
	}
	places, err := h.Svc.Places.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// GET /places/nearby?lat=&lng=&radius=
func (h *Handler) NearbyPlaces(c *gin.Context) {
	lat, ok := floatQuery(c, "lat", true, 0)
	if !ok {
		return
	}
	lng, ok := floatQuery(c, "lng", true, 0)
	if !ok {
		return
	}
	radius, ok := floatQuery(c, "radius", false, geo.DefaultRadiusKm)
	if !ok {
		return
	}
	places, err := h.Svc.Places.Nearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// GET /places/search?q=
func (h *Handler) SearchPlaces(c *gin.Context) {
	query, ok := stringQuery(c, "q")
	if !ok {
		return
	}
	places, err := h.Svc.Places.Search(c.Request.Context(), query)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}
