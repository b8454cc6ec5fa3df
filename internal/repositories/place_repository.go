package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

const placeColumns = "id, name, category, rating, description, location, latitude, longitude, reviews_count, created_at"

type PlaceRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

func (r PlaceRepository) Create(ctx context.Context, p models.Place) (models.Place, error) {
	p.CreatedAt = stamp(r.Now)
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO places (name, category, rating, description, location, latitude, longitude, reviews_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Category, p.Rating, p.Description, p.Location,
		nullFloat(p.Latitude), nullFloat(p.Longitude), p.ReviewsCount, p.CreatedAt,
	)
	if err != nil {
		return models.Place{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Place{}, domain.InternalError{Err: err}
	}
	p.ID = domain.ID(id)
	return p, nil
}

func (r PlaceRepository) List(ctx context.Context, q domain.ListQuery) ([]models.Place, error) {
	query, args, err := listSQL("places", placeColumns, q, placeFilterFields)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, query, args...)
}

func (r PlaceRepository) All(ctx context.Context) ([]models.Place, error) {
	return r.query(ctx, "SELECT "+placeColumns+" FROM places ORDER BY id")
}

func (r PlaceRepository) GetByID(ctx context.Context, id domain.ID) (models.Place, error) {
	p, err := scanPlace(r.DB.QueryRowContext(ctx, "SELECT "+placeColumns+" FROM places WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, domain.NotFoundError{Resource: "place", Err: err}
	}
	if err != nil {
		return models.Place{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r PlaceRepository) FindByName(ctx context.Context, name string) (models.Place, bool, error) {
	p, err := scanPlace(r.DB.QueryRowContext(ctx, "SELECT "+placeColumns+" FROM places WHERE name"+binaryEq+" ORDER BY id LIMIT 1", name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, false, nil
	}
	if err != nil {
		return models.Place{}, false, domain.InternalError{Err: err}
	}
	return p, true, nil
}

func (r PlaceRepository) Count(ctx context.Context) (int, error) {
	return countRows(r.DB, func(n *int) error {
		return r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM places").Scan(n)
	})
}

func (r PlaceRepository) query(ctx context.Context, query string, args ...any) ([]models.Place, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Place{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func scanPlace(s rowScanner) (models.Place, error) {
	var (
		p        models.Place
		lat, lng sql.NullFloat64
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Rating,
		&p.Description,
		&p.Location,
		&lat,
		&lng,
		&p.ReviewsCount,
		&p.CreatedAt,
	); err != nil {
		return models.Place{}, err
	}
	p.Latitude = floatPtr(lat)
	p.Longitude = floatPtr(lng)
	return p, nil
}
