package handlers

import "travelsuggester/internal/services"

// Handler serves the HTTP API on top of the service layer.
type Handler struct {
	Svc services.Services
}

func New(svc services.Services) *Handler {
	return &Handler{Svc: svc}
}
