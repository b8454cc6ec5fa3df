package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

const busRouteColumns = "id, route_name, departure_time, duration, fare, operator, rating, created_at"

type BusRouteRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

func (r BusRouteRepository) Create(ctx context.Context, br models.BusRoute) (models.BusRoute, error) {
	br.CreatedAt = stamp(r.Now)
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO bus_routes (route_name, departure_time, duration, fare, operator, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		br.RouteName, br.DepartureTime, br.Duration, br.Fare, br.Operator, br.Rating, br.CreatedAt,
	)
	if err != nil {
		return models.BusRoute{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.BusRoute{}, domain.InternalError{Err: err}
	}
	br.ID = domain.ID(id)
	return br, nil
}

func (r BusRouteRepository) List(ctx context.Context, q domain.ListQuery) ([]models.BusRoute, error) {
	query, args, err := listSQL("bus_routes", busRouteColumns, q, busRouteFilterFields)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, query, args...)
}

func (r BusRouteRepository) All(ctx context.Context) ([]models.BusRoute, error) {
	return r.query(ctx, "SELECT "+busRouteColumns+" FROM bus_routes ORDER BY id")
}

func (r BusRouteRepository) FindByName(ctx context.Context, routeName string) (models.BusRoute, bool, error) {
	br, err := scanBusRoute(r.DB.QueryRowContext(ctx, "SELECT "+busRouteColumns+" FROM bus_routes WHERE route_name"+binaryEq+" ORDER BY id LIMIT 1", routeName))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BusRoute{}, false, nil
	}
	if err != nil {
		return models.BusRoute{}, false, domain.InternalError{Err: err}
	}
	return br, true, nil
}

func (r BusRouteRepository) Count(ctx context.Context) (int, error) {
	return countRows(r.DB, func(n *int) error {
		return r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM bus_routes").Scan(n)
	})
}

func (r BusRouteRepository) query(ctx context.Context, query string, args ...any) ([]models.BusRoute, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.BusRoute{}
	for rows.Next() {
		br, err := scanBusRoute(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, br)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func scanBusRoute(s rowScanner) (models.BusRoute, error) {
	var br models.BusRoute
	err := s.Scan(
		&br.ID,
		&br.RouteName,
		&br.DepartureTime,
		&br.Duration,
		&br.Fare,
		&br.Operator,
		&br.Rating,
		&br.CreatedAt,
	)
	return br, err
}
