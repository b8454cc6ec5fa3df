package models

// Stats holds entity counts per kind.
type Stats struct {
	TotalPlaces    int `json:"total_places"`
	TotalTrips     int `json:"total_trips"`
	TotalBusRoutes int `json:"total_bus_routes"`
	TotalReviews   int `json:"total_reviews"`
}
