package services

import (
	"context"
	"fmt"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/planner"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/utils"
)

// DefaultTripNumberAttempts bounds trip number regeneration on collision.
const DefaultTripNumberAttempts = 3

type TripService struct {
	Trips       repositories.TripRepo
	Planner     planner.Planner
	Numbers     *planner.NumberGenerator
	MaxAttempts int
}

// Create generates the plan once, then inserts the trip under a fresh trip
// number, regenerating the number when the store reports a collision.
func (s TripService) Create(ctx context.Context, in models.TripInput) (models.Trip, error) {
	for _, f := range []struct{ name, value string }{
		{"origin", in.Origin},
		{"destination", in.Destination},
		{"departure_time", in.DepartureTime},
		{"mode", in.Mode},
	} {
		if utils.IsBlank(f.value) {
			return models.Trip{}, domain.ValidationError{Field: f.name, Msg: "required"}
		}
	}

	plan := s.Planner.Generate(planner.Request{
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureTime: in.DepartureTime,
		Mode:          in.Mode,
	})

	numbers := s.Numbers
	if numbers == nil {
		numbers = planner.NewNumberGenerator(nil)
	}
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultTripNumberAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		trip, err := s.Trips.Create(ctx, models.Trip{
			TripNumber:    numbers.Next(),
			Origin:        in.Origin,
			Destination:   in.Destination,
			DepartureTime: in.DepartureTime,
			Mode:          in.Mode,
			TravelPlan:    plan,
		})
		if err == nil {
			utils.LogCtx(ctx, "trips", "create", fmt.Sprintf("trip_number=%s mode=%s", trip.TripNumber, trip.Mode))
			return trip, nil
		}
		if !domain.IsConflict(err) {
			return models.Trip{}, err
		}
		utils.LogCtx(ctx, "trips", "create_retry", fmt.Sprintf("attempt=%d err=%v", i+1, err))
		lastErr = err
	}
	return models.Trip{}, lastErr
}

func (s TripService) GetByNumber(ctx context.Context, number string) (models.Trip, error) {
	number = utils.TrimOrEmpty(number)
	if number == "" {
		return models.Trip{}, domain.ValidationError{Field: "trip_number", Msg: "required"}
	}
	return s.Trips.GetByNumber(ctx, number)
}

func (s TripService) List(ctx context.Context, q domain.ListQuery) ([]models.Trip, error) {
	return s.Trips.List(ctx, q)
}
