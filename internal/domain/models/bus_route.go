package models

import (
	"time"

	"travelsuggester/internal/domain"
)

// DefaultOperator is used when a bus route is created without an operator.
const DefaultOperator = "KSRTC"

type BusRoute struct {
	ID            domain.ID `json:"id"`
	RouteName     string    `json:"route_name"`
	DepartureTime string    `json:"departure_time"`
	Duration      string    `json:"duration"`
	Fare          string    `json:"fare"`
	Operator      string    `json:"operator"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

type BusRouteInput struct {
	RouteName     string  `json:"route_name"`
	DepartureTime string  `json:"departure_time"`
	Duration      string  `json:"duration"`
	Fare          string  `json:"fare"`
	Operator      string  `json:"operator"`
	Rating        float64 `json:"-"`
}

func (in BusRouteInput) BusRoute() BusRoute {
	op := in.Operator
	if op == "" {
		op = DefaultOperator
	}
	return BusRoute{
		RouteName:     in.RouteName,
		DepartureTime: in.DepartureTime,
		Duration:      in.Duration,
		Fare:          in.Fare,
		Operator:      op,
		Rating:        in.Rating,
	}
}
