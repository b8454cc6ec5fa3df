package services

import (
	"context"
	"fmt"
	"sync"

	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/utils"
)

// SeedResult counts what a seed run inserted and skipped.
type SeedResult struct {
	PlacesInserted    int `json:"places_inserted"`
	PlacesSkipped     int `json:"places_skipped"`
	BusRoutesInserted int `json:"bus_routes_inserted"`
	BusRoutesSkipped  int `json:"bus_routes_skipped"`
}

type SeedService struct {
	Places    repositories.PlaceRepo
	BusRoutes repositories.BusRouteRepo
	mu        *sync.Mutex
}

func NewSeedService(places repositories.PlaceRepo, routes repositories.BusRouteRepo) SeedService {
	return SeedService{Places: places, BusRoutes: routes, mu: &sync.Mutex{}}
}

// SeedIfAbsent inserts each place and route whose name is not yet stored.
// Runs are serialized so concurrent calls cannot double-insert.
func (s SeedService) SeedIfAbsent(ctx context.Context, places []models.Place, routes []models.BusRoute) (SeedResult, error) {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	var res SeedResult
	for _, p := range places {
		_, found, err := s.Places.FindByName(ctx, p.Name)
		if err != nil {
			return res, err
		}
		if found {
			res.PlacesSkipped++
			continue
		}
		if _, err := s.Places.Create(ctx, p); err != nil {
			return res, err
		}
		res.PlacesInserted++
	}
	for _, r := range routes {
		_, found, err := s.BusRoutes.FindByName(ctx, r.RouteName)
		if err != nil {
			return res, err
		}
		if found {
			res.BusRoutesSkipped++
			continue
		}
		if _, err := s.BusRoutes.Create(ctx, r); err != nil {
			return res, err
		}
		res.BusRoutesInserted++
	}

	utils.LogCtx(ctx, "seed", "seed_if_absent", fmt.Sprintf("places_inserted=%d places_skipped=%d routes_inserted=%d routes_skipped=%d",
		res.PlacesInserted, res.PlacesSkipped, res.BusRoutesInserted, res.BusRoutesSkipped))
	return res, nil
}

// SeedDefaults loads the built-in Wayanad sample catalog.
func (s SeedService) SeedDefaults(ctx context.Context) (SeedResult, error) {
	return s.SeedIfAbsent(ctx, SamplePlaces(), SampleBusRoutes())
}

func SamplePlaces() []models.Place {
	return []models.Place{
		{
			Name:         "Wayanad Tea Gardens",
			Category:     "nature",
			Rating:       4.8,
			Description:  "Beautiful tea plantations with scenic mountain views",
			Location:     "Wayanad, Kerala",
			Latitude:     models.Float(11.6854),
			Longitude:    models.Float(76.1320),
			ReviewsCount: 234,
		},
		{
			Name:         "Spice Garden Restaurant",
			Category:     "restaurant",
			Rating:       4.6,
			Description:  "Authentic Kerala cuisine with traditional spices",
			Location:     "Kalpetta, Wayanad",
			Latitude:     models.Float(11.6081),
			Longitude:    models.Float(76.0836),
			ReviewsCount: 156,
		},
		{
			Name:         "Banasura Sagar Dam",
			Category:     "adventure",
			Rating:       4.7,
			Description:  "Largest earthen dam in India with boating facilities",
			Location:     "Padinharathara, Wayanad",
			Latitude:     models.Float(11.7867),
			Longitude:    models.Float(76.1693),
			ReviewsCount: 189,
		},
		{
			Name:         "Edakkal Caves",
			Category:     "historical",
			Rating:       4.5,
			Description:  "Ancient caves with prehistoric petroglyphs",
			Location:     "Ambukuthi Hills, Wayanad",
			Latitude:     models.Float(11.6664),
			Longitude:    models.Float(76.1788),
			ReviewsCount: 278,
		},
	}
}

func SampleBusRoutes() []models.BusRoute {
	return []models.BusRoute{
		{RouteName: "Sulthan Bathery - Pala", DepartureTime: "19:00", Duration: "10h 30m", Fare: "₹280", Operator: models.DefaultOperator, Rating: 4.2},
		{RouteName: "Kalpetta - Kochi", DepartureTime: "06:30", Duration: "6h 45m", Fare: "₹240", Operator: models.DefaultOperator, Rating: 4.4},
		{RouteName: "Mananthavady - Kozhikode", DepartureTime: "17:45", Duration: "4h 15m", Fare: "₹180", Operator: models.DefaultOperator, Rating: 4.1},
	}
}
