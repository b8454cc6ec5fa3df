package services

import (
	"context"
	"fmt"
	"math"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/geo"
	"travelsuggester/internal/rating"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/search"
	"travelsuggester/internal/utils"
)

type PlaceService struct {
	Places repositories.PlaceRepo
}

func (s PlaceService) Create(ctx context.Context, in models.PlaceInput) (models.Place, error) {
	in.Name = utils.TrimOrEmpty(in.Name)
	if in.Name == "" {
		return models.Place{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if err := rating.Validate(in.Rating, "rating"); err != nil {
		return models.Place{}, err
	}
	if in.ReviewsCount < 0 {
		return models.Place{}, domain.ValidationError{Field: "reviews_count", Msg: "must not be negative"}
	}
	if in.Latitude != nil {
		if err := geo.ValidateLatitude(*in.Latitude, "latitude"); err != nil {
			return models.Place{}, domain.ValidationError{Field: "latitude", Msg: err.Error(), Err: err}
		}
	}
	if in.Longitude != nil {
		if err := geo.ValidateLongitude(*in.Longitude, "longitude"); err != nil {
			return models.Place{}, domain.ValidationError{Field: "longitude", Msg: err.Error(), Err: err}
		}
	}

	p, err := s.Places.Create(ctx, in.Place())
	if err != nil {
		return models.Place{}, err
	}
	utils.LogCtx(ctx, "places", "create", fmt.Sprintf("place_id=%d category=%s", p.ID, p.Category))
	return p, nil
}

func (s PlaceService) List(ctx context.Context, q domain.ListQuery) ([]models.Place, error) {
	return s.Places.List(ctx, q)
}

func (s PlaceService) Get(ctx context.Context, id domain.ID) (models.Place, error) {
	return s.Places.GetByID(ctx, id)
}

// Nearby returns up to 20 places within radiusKm of (lat, lng), in store order.
func (s PlaceService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Place, error) {
	if err := geo.ValidateCoordinatePair(lat, lng, ""); err != nil {
		return nil, domain.ValidationError{Field: "coordinates", Msg: err.Error(), Err: err}
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, domain.ValidationError{Field: "radius", Msg: "must be a non-negative number"}
	}
	all, err := s.Places.All(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Nearby(lat, lng, radiusKm, all), nil
}

// Search returns up to 20 places whose name contains query (case-sensitive).
func (s PlaceService) Search(ctx context.Context, query string) ([]models.Place, error) {
	all, err := s.Places.All(ctx)
	if err != nil {
		return nil, err
	}
	return search.Places(query, all), nil
}
