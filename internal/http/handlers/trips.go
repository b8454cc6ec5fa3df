package handlers

import (
	"net/http"

	"travelsuggester/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const defaultTripsLimit = 50

// POST /trips/
func (h *Handler) CreateTrip(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	trip, err := h.Svc.Trips.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /trips/:trip_number
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.Svc.Trips.GetByNumber(c.Request.Context(), c.Param("trip_number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /trips/?skip=&limit=&mode=
func (h *Handler) ListTrips(c *gin.Context) {
	q, ok := listQuery(c, defaultTripsLimit, "mode")
	if !ok {
		return
	}
	trips, err := h.Svc.Trips.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}
