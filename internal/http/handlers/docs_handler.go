package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /trips/:trip_number/pdf returns the printable itinerary (inline).
func (h *Handler) GetTripItineraryPDF(c *gin.Context) {
	pdfBytes, filename, err := h.Svc.Docs.TripItinerary(c.Request.Context(), c.Param("trip_number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
