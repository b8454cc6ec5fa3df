package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

const tripColumns = "id, trip_number, origin, destination, departure_time, mode, travel_plan, created_at"

type TripRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

func (r TripRepository) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	t.CreatedAt = stamp(r.Now)
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO trips (trip_number, origin, destination, departure_time, mode, travel_plan, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.TripNumber, t.Origin, t.Destination, t.DepartureTime, t.Mode, t.TravelPlan, t.CreatedAt,
	)
	if isDuplicateEntry(err) {
		return models.Trip{}, domain.ConflictError{Resource: "trip", Msg: "trip_number " + t.TripNumber + " already exists", Err: err}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	t.ID = domain.ID(id)
	return t, nil
}

func (r TripRepository) List(ctx context.Context, q domain.ListQuery) ([]models.Trip, error) {
	query, args, err := listSQL("trips", tripColumns, q, tripFilterFields)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (r TripRepository) GetByNumber(ctx context.Context, number string) (models.Trip, error) {
	t, err := scanTrip(r.DB.QueryRowContext(ctx, "SELECT "+tripColumns+" FROM trips WHERE trip_number"+binaryEq+" LIMIT 1", number))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Key: number, Err: err}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r TripRepository) Count(ctx context.Context) (int, error) {
	return countRows(r.DB, func(n *int) error {
		return r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(n)
	})
}

func scanTrip(s rowScanner) (models.Trip, error) {
	var t models.Trip
	err := s.Scan(
		&t.ID,
		&t.TripNumber,
		&t.Origin,
		&t.Destination,
		&t.DepartureTime,
		&t.Mode,
		&t.TravelPlan,
		&t.CreatedAt,
	)
	return t, err
}
