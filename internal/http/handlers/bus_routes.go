package handlers

import (
	"net/http"

	"travelsuggester/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const defaultBusRoutesLimit = 100

// POST /bus-routes/
func (h *Handler) CreateBusRoute(c *gin.Context) {
	var in models.BusRouteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	br, err := h.Svc.BusRoutes.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, br)
}

// GET /bus-routes/?skip=&limit=&operator=
func (h *Handler) ListBusRoutes(c *gin.Context) {
	q, ok := listQuery(c, defaultBusRoutesLimit, "operator")
	if !ok {
		return
	}
	routes, err := h.Svc.BusRoutes.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /bus-routes/search?origin=&destination=
func (h *Handler) SearchBusRoutes(c *gin.Context) {
	origin, ok := stringQuery(c, "origin")
	if !ok {
		return
	}
	destination, ok := stringQuery(c, "destination")
	if !ok {
		return
	}
	routes, err := h.Svc.BusRoutes.Search(c.Request.Context(), origin, destination)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /bus-routes/nearby?location=
func (h *Handler) NearbyBusRoutes(c *gin.Context) {
	location, ok := stringQuery(c, "location")
	if !ok {
		return
	}
	routes, err := h.Svc.BusRoutes.Nearby(c.Request.Context(), location)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}
