package services

import (
	"context"

	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/rating"
	"travelsuggester/internal/repositories"
)

// MaxPopularDestinations caps PopularDestinations.
const MaxPopularDestinations = 10

type StatsService struct {
	Store repositories.Store
}

func (s StatsService) Stats(ctx context.Context) (models.Stats, error) {
	var (
		out models.Stats
		err error
	)
	if out.TotalPlaces, err = s.Store.Places.Count(ctx); err != nil {
		return models.Stats{}, err
	}
	if out.TotalTrips, err = s.Store.Trips.Count(ctx); err != nil {
		return models.Stats{}, err
	}
	if out.TotalBusRoutes, err = s.Store.BusRoutes.Count(ctx); err != nil {
		return models.Stats{}, err
	}
	if out.TotalReviews, err = s.Store.Reviews.Count(ctx); err != nil {
		return models.Stats{}, err
	}
	return out, nil
}

// PopularDestinations returns up to 10 places rated 4.5 or higher, in store order.
func (s StatsService) PopularDestinations(ctx context.Context) ([]models.Place, error) {
	all, err := s.Store.Places.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Place, 0, MaxPopularDestinations)
	for _, p := range all {
		if !rating.IsPopular(p.Rating) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxPopularDestinations {
			break
		}
	}
	return out, nil
}
