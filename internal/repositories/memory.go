package repositories

import (
	"context"
	"sync"
	"time"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

// Memory is a mapping-backed store for all four entity kinds. Reads share an
// RWMutex read lock; every write, including review aggregation, runs under
// the write lock so readers never see a half-applied update.
type Memory struct {
	mu  sync.RWMutex
	now func() time.Time

	places      []models.Place
	placeIndex  map[domain.ID]int
	trips       []models.Trip
	tripNumbers map[string]int
	routes      []models.BusRoute
	reviews     []models.Review

	nextPlaceID  domain.ID
	nextTripID   domain.ID
	nextRouteID  domain.ID
	nextReviewID domain.ID
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		now:         now,
		placeIndex:  map[domain.ID]int{},
		tripNumbers: map[string]int{},
	}
}

// NewMemoryStore wires a fresh Memory into a Store.
func NewMemoryStore(now func() time.Time) Store {
	m := NewMemory(now)
	return m.Store()
}

func (m *Memory) Store() Store {
	return Store{
		Places:    memPlaces{m},
		Trips:     memTrips{m},
		BusRoutes: memRoutes{m},
		Reviews:   memReviews{m},
	}
}

func (m *Memory) stamp() time.Time {
	return m.now().UTC()
}

func page[T any](items []T, q domain.ListQuery, keep func(T) bool) []T {
	matched := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			matched = append(matched, it)
		}
	}
	start, end := q.Page.Window(len(matched))
	out := make([]T, end-start)
	copy(out, matched[start:end])
	return out
}

func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// ---------------------------------------------------------------------------
// places

type memPlaces struct{ m *Memory }

func (r memPlaces) Create(_ context.Context, p models.Place) (models.Place, error) {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextPlaceID++
	p.ID = m.nextPlaceID
	p.CreatedAt = m.stamp()
	m.placeIndex[p.ID] = len(m.places)
	m.places = append(m.places, p)
	return p, nil
}

func (r memPlaces) List(_ context.Context, q domain.ListQuery) ([]models.Place, error) {
	if err := checkFilter(q.Filter, placeFilterFields); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	var keep func(models.Place) bool
	if f := q.Filter; f != nil {
		keep = func(p models.Place) bool {
			switch f.Field {
			case "category":
				return p.Category == f.Value
			case "name":
				return p.Name == f.Value
			default:
				return p.Location == f.Value
			}
		}
	}
	return page(r.m.places, q, keep), nil
}

func (r memPlaces) All(_ context.Context) ([]models.Place, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return snapshot(r.m.places), nil
}

func (r memPlaces) GetByID(_ context.Context, id domain.ID) (models.Place, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	idx, ok := r.m.placeIndex[id]
	if !ok {
		return models.Place{}, domain.NotFoundError{Resource: "place"}
	}
	return r.m.places[idx], nil
}

func (r memPlaces) FindByName(_ context.Context, name string) (models.Place, bool, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, p := range r.m.places {
		if p.Name == name {
			return p, true, nil
		}
	}
	return models.Place{}, false, nil
}

func (r memPlaces) Count(_ context.Context) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return len(r.m.places), nil
}

// ---------------------------------------------------------------------------
// trips

type memTrips struct{ m *Memory }

func (r memTrips) Create(_ context.Context, t models.Trip) (models.Trip, error) {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.tripNumbers[t.TripNumber]; taken {
		return models.Trip{}, domain.ConflictError{Resource: "trip", Msg: "trip_number " + t.TripNumber + " already exists"}
	}
	m.nextTripID++
	t.ID = m.nextTripID
	t.CreatedAt = m.stamp()
	m.tripNumbers[t.TripNumber] = len(m.trips)
	m.trips = append(m.trips, t)
	return t, nil
}

func (r memTrips) List(_ context.Context, q domain.ListQuery) ([]models.Trip, error) {
	if err := checkFilter(q.Filter, tripFilterFields); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	var keep func(models.Trip) bool
	if f := q.Filter; f != nil {
		keep = func(t models.Trip) bool {
			switch f.Field {
			case "mode":
				return t.Mode == f.Value
			case "origin":
				return t.Origin == f.Value
			default:
				return t.Destination == f.Value
			}
		}
	}
	return page(r.m.trips, q, keep), nil
}

func (r memTrips) GetByNumber(_ context.Context, number string) (models.Trip, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	idx, ok := r.m.tripNumbers[number]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Key: number}
	}
	return r.m.trips[idx], nil
}

func (r memTrips) Count(_ context.Context) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return len(r.m.trips), nil
}

// ---------------------------------------------------------------------------
// bus routes

type memRoutes struct{ m *Memory }

func (r memRoutes) Create(_ context.Context, br models.BusRoute) (models.BusRoute, error) {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextRouteID++
	br.ID = m.nextRouteID
	br.CreatedAt = m.stamp()
	m.routes = append(m.routes, br)
	return br, nil
}

func (r memRoutes) List(_ context.Context, q domain.ListQuery) ([]models.BusRoute, error) {
	if err := checkFilter(q.Filter, busRouteFilterFields); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	var keep func(models.BusRoute) bool
	if f := q.Filter; f != nil {
		keep = func(br models.BusRoute) bool {
			if f.Field == "operator" {
				return br.Operator == f.Value
			}
			return br.RouteName == f.Value
		}
	}
	return page(r.m.routes, q, keep), nil
}

func (r memRoutes) All(_ context.Context) ([]models.BusRoute, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return snapshot(r.m.routes), nil
}

func (r memRoutes) FindByName(_ context.Context, routeName string) (models.BusRoute, bool, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, br := range r.m.routes {
		if br.RouteName == routeName {
			return br, true, nil
		}
	}
	return models.BusRoute{}, false, nil
}

func (r memRoutes) Count(_ context.Context) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return len(r.m.routes), nil
}

// ---------------------------------------------------------------------------
// reviews

type memReviews struct{ m *Memory }

func (r memReviews) CreateAndAggregate(_ context.Context, rv models.Review, agg AggregateFunc) (models.Review, *models.Place, error) {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextReviewID++
	rv.ID = m.nextReviewID
	rv.CreatedAt = m.stamp()
	m.reviews = append(m.reviews, rv)

	idx, ok := m.placeIndex[rv.PlaceID]
	if !ok {
		return rv, nil, nil
	}
	place := m.places[idx]
	if agg != nil {
		if summary, ok := agg(m.reviewsOf(rv.PlaceID)); ok {
			place.Rating = summary.Rating
			place.ReviewsCount = summary.ReviewsCount
			m.places[idx] = place
		}
	}
	return rv, &place, nil
}

func (r memReviews) ListByPlace(_ context.Context, placeID domain.ID) ([]models.Review, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return r.m.reviewsOf(placeID), nil
}

func (r memReviews) Count(_ context.Context) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return len(r.m.reviews), nil
}

// reviewsOf expects m.mu to be held.
func (m *Memory) reviewsOf(placeID domain.ID) []models.Review {
	out := make([]models.Review, 0)
	for _, rv := range m.reviews {
		if rv.PlaceID == placeID {
			out = append(out, rv)
		}
	}
	return out
}
