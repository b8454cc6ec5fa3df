package services

import (
	"context"
	"fmt"
	"sync"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/rating"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/utils"
)

type ReviewService struct {
	Reviews repositories.ReviewRepo
	locks   *placeLocks
}

func NewReviewService(reviews repositories.ReviewRepo) ReviewService {
	return ReviewService{Reviews: reviews, locks: newPlaceLocks()}
}

// Create stores the review and recomputes the place's rating and
// reviews_count from all of its reviews. Submissions for the same place are
// serialized. A missing place is not an error; the review is still kept and
// the returned place is nil.
func (s ReviewService) Create(ctx context.Context, in models.ReviewInput) (models.Review, *models.Place, error) {
	in.UserName = utils.TrimOrEmpty(in.UserName)
	if in.UserName == "" {
		return models.Review{}, nil, domain.ValidationError{Field: "user_name", Msg: "required"}
	}
	if err := rating.Validate(in.Rating, "rating"); err != nil {
		return models.Review{}, nil, err
	}

	if s.locks != nil {
		unlock := s.locks.lock(in.PlaceID)
		defer unlock()
	}

	rv, place, err := s.Reviews.CreateAndAggregate(ctx, models.Review{
		PlaceID:  in.PlaceID,
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}, rating.Aggregate)
	if err != nil {
		return models.Review{}, nil, err
	}
	if place == nil {
		utils.LogCtx(ctx, "reviews", "create", fmt.Sprintf("review_id=%d place_id=%d aggregation=skipped", rv.ID, rv.PlaceID))
	} else {
		utils.LogCtx(ctx, "reviews", "create", fmt.Sprintf("review_id=%d place_id=%d rating=%.1f reviews_count=%d", rv.ID, rv.PlaceID, place.Rating, place.ReviewsCount))
	}
	return rv, place, nil
}

func (s ReviewService) ListForPlace(ctx context.Context, placeID domain.ID) ([]models.Review, error) {
	return s.Reviews.ListByPlace(ctx, placeID)
}

// placeLocks hands out one mutex per place id, dropping it once unused.
type placeLocks struct {
	mu    sync.Mutex
	locks map[domain.ID]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newPlaceLocks() *placeLocks {
	return &placeLocks{locks: map[domain.ID]*refMutex{}}
}

func (l *placeLocks) lock(id domain.ID) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &refMutex{}
		l.locks[id] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
