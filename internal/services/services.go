package services

import (
	"time"

	"travelsuggester/internal/planner"
	"travelsuggester/internal/repositories"
)

// Services bundles the core operations over one repository handle.
type Services struct {
	Places    PlaceService
	Trips     TripService
	BusRoutes BusRouteService
	Reviews   ReviewService
	Stats     StatsService
	Seed      SeedService
	Docs      DocsService
	Auth      AuthService
}

// New wires every service to store. now may be nil. Auth is left for the
// caller to configure.
func New(store repositories.Store, now func() time.Time) Services {
	if now == nil {
		now = time.Now
	}
	return Services{
		Places: PlaceService{Places: store.Places},
		Trips: TripService{
			Trips:   store.Trips,
			Planner: planner.Default(),
			Numbers: planner.NewNumberGenerator(now),
		},
		BusRoutes: BusRouteService{Routes: store.BusRoutes},
		Reviews:   NewReviewService(store.Reviews),
		Stats:     StatsService{Store: store},
		Seed:      NewSeedService(store.Places, store.BusRoutes),
		Docs:      DocsService{Trips: store.Trips, Now: now},
	}
}
