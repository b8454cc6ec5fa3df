package repositories

import (
	"context"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

// AggregateFunc derives a place's rating summary from its full review set.
// ok=false leaves the place untouched.
type AggregateFunc func(reviews []models.Review) (summary models.RatingSummary, ok bool)

type PlaceRepo interface {
	Create(ctx context.Context, p models.Place) (models.Place, error)
	List(ctx context.Context, q domain.ListQuery) ([]models.Place, error)
	All(ctx context.Context) ([]models.Place, error)
	GetByID(ctx context.Context, id domain.ID) (models.Place, error)
	FindByName(ctx context.Context, name string) (models.Place, bool, error)
	Count(ctx context.Context) (int, error)
}

type TripRepo interface {
	// Create fails with domain.ConflictError when the trip number is taken.
	Create(ctx context.Context, t models.Trip) (models.Trip, error)
	List(ctx context.Context, q domain.ListQuery) ([]models.Trip, error)
	GetByNumber(ctx context.Context, number string) (models.Trip, error)
	Count(ctx context.Context) (int, error)
}

type BusRouteRepo interface {
	Create(ctx context.Context, r models.BusRoute) (models.BusRoute, error)
	List(ctx context.Context, q domain.ListQuery) ([]models.BusRoute, error)
	All(ctx context.Context) ([]models.BusRoute, error)
	FindByName(ctx context.Context, routeName string) (models.BusRoute, bool, error)
	Count(ctx context.Context) (int, error)
}

type ReviewRepo interface {
	// CreateAndAggregate stores the review and, when the place exists, writes
	// agg's summary of all the place's reviews to it, as one atomic step.
	// The returned place is nil when no place has that id.
	CreateAndAggregate(ctx context.Context, r models.Review, agg AggregateFunc) (models.Review, *models.Place, error)
	ListByPlace(ctx context.Context, placeID domain.ID) ([]models.Review, error)
	Count(ctx context.Context) (int, error)
}

// Store is the repository handle injected into services.
type Store struct {
	Places    PlaceRepo
	Trips     TripRepo
	BusRoutes BusRouteRepo
	Reviews   ReviewRepo
}

var (
	placeFilterFields    = []string{"category", "name", "location"}
	tripFilterFields     = []string{"mode", "origin", "destination"}
	busRouteFilterFields = []string{"operator", "route_name"}
)

func checkFilter(f *domain.Filter, allowed []string) error {
	if f == nil {
		return nil
	}
	for _, a := range allowed {
		if f.Field == a {
			return nil
		}
	}
	return domain.ValidationError{Field: "filter", Msg: "unsupported field " + f.Field}
}
