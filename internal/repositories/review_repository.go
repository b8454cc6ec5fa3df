package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

const reviewColumns = "id, place_id, user_name, rating, comment, created_at"

type ReviewRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

// CreateAndAggregate runs in one transaction. The place row is locked with
// SELECT ... FOR UPDATE before the insert, so concurrent reviews of the same
// place are applied one after another.
func (r ReviewRepository) CreateAndAggregate(ctx context.Context, rv models.Review, agg AggregateFunc) (models.Review, *models.Place, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Review{}, nil, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var locked domain.ID
	placeFound := true
	err = tx.QueryRowContext(ctx, "SELECT id FROM places WHERE id = ? FOR UPDATE", rv.PlaceID).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		placeFound = false
	} else if err != nil {
		return models.Review{}, nil, domain.InternalError{Err: err}
	}

	rv.CreatedAt = stamp(r.Now)
	res, err := tx.ExecContext(ctx, `
		INSERT INTO reviews (place_id, user_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		rv.PlaceID, rv.UserName, rv.Rating, rv.Comment, rv.CreatedAt,
	)
	if err != nil {
		return models.Review{}, nil, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Review{}, nil, domain.InternalError{Err: err}
	}
	rv.ID = domain.ID(id)

	if !placeFound {
		if err := tx.Commit(); err != nil {
			return models.Review{}, nil, domain.InternalError{Err: err}
		}
		return rv, nil, nil
	}

	if agg != nil {
		reviews, err := queryReviews(ctx, tx, rv.PlaceID)
		if err != nil {
			return models.Review{}, nil, err
		}
		if summary, ok := agg(reviews); ok {
			if _, err := tx.ExecContext(ctx, "UPDATE places SET rating = ?, reviews_count = ? WHERE id = ?",
				summary.Rating, summary.ReviewsCount, rv.PlaceID); err != nil {
				return models.Review{}, nil, domain.InternalError{Err: err}
			}
		}
	}

	place, err := scanPlace(tx.QueryRowContext(ctx, "SELECT "+placeColumns+" FROM places WHERE id = ?", rv.PlaceID))
	if err != nil {
		return models.Review{}, nil, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Review{}, nil, domain.InternalError{Err: err}
	}
	return rv, &place, nil
}

func (r ReviewRepository) ListByPlace(ctx context.Context, placeID domain.ID) ([]models.Review, error) {
	return queryReviews(ctx, r.DB, placeID)
}

func (r ReviewRepository) Count(ctx context.Context) (int, error) {
	return countRows(r.DB, func(n *int) error {
		return r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews").Scan(n)
	})
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryReviews(ctx context.Context, q queryer, placeID domain.ID) ([]models.Review, error) {
	rows, err := q.QueryContext(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE place_id = ? ORDER BY id", placeID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.PlaceID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
