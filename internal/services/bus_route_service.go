package services

import (
	"context"
	"fmt"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/rating"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/search"
	"travelsuggester/internal/utils"
)

type BusRouteService struct {
	Routes repositories.BusRouteRepo
}

func (s BusRouteService) Create(ctx context.Context, in models.BusRouteInput) (models.BusRoute, error) {
	in.RouteName = utils.TrimOrEmpty(in.RouteName)
	if in.RouteName == "" {
		return models.BusRoute{}, domain.ValidationError{Field: "route_name", Msg: "required"}
	}
	if err := rating.Validate(in.Rating, "rating"); err != nil {
		return models.BusRoute{}, err
	}
	br, err := s.Routes.Create(ctx, in.BusRoute())
	if err != nil {
		return models.BusRoute{}, err
	}
	utils.LogCtx(ctx, "bus_routes", "create", fmt.Sprintf("route_id=%d operator=%s", br.ID, br.Operator))
	return br, nil
}

func (s BusRouteService) List(ctx context.Context, q domain.ListQuery) ([]models.BusRoute, error) {
	return s.Routes.List(ctx, q)
}

// Search returns routes whose name contains origin or destination.
func (s BusRouteService) Search(ctx context.Context, origin, destination string) ([]models.BusRoute, error) {
	all, err := s.Routes.All(ctx)
	if err != nil {
		return nil, err
	}
	return search.BusRoutes(origin, destination, all), nil
}

// Nearby returns up to 20 routes whose name contains location.
func (s BusRouteService) Nearby(ctx context.Context, location string) ([]models.BusRoute, error) {
	all, err := s.Routes.All(ctx)
	if err != nil {
		return nil, err
	}
	return search.NearbyBusRoutes(location, all), nil
}
