package memory

import (
	"context"
	"time"

	"marrakech-tours/internal/data/entity"

	"github.com/google/uuid"
)

type reviewStore struct {
	s *Store
}

func (st *reviewStore) Create(ctx context.Context, review *entity.Review) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.reviews[review.ID] = copyReview(review)
	return nil
}

func (st *reviewStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	review, ok := st.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return copyReview(review), nil
}

func (st *reviewStore) FindApproved(ctx context.Context, activityID *uuid.UUID) ([]*entity.Review, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range st.s.reviews {
		if !review.Approved {
			continue
		}
		if activityID != nil && review.ActivityID != *activityID {
			continue
		}
		reviews = append(reviews, copyReview(review))
	}
	sortByCreatedDesc(reviews, func(r *entity.Review) time.Time { return r.CreatedAt })
	return reviews, nil
}

func (st *reviewStore) FindAll(ctx context.Context) ([]*entity.Review, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range st.s.reviews {
		reviews = append(reviews, copyReview(review))
	}
	sortByCreatedDesc(reviews, func(r *entity.Review) time.Time { return r.CreatedAt })
	return reviews, nil
}

func (st *reviewStore) UpdateApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Review, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	review, ok := st.s.reviews[id]
	if !ok {
		return nil, nil
	}
	review.Approved = approved
	review.UpdatedAt = time.Now()
	return copyReview(review), nil
}

func (st *reviewStore) RatingStats(ctx context.Context, activityID uuid.UUID) (float64, int64, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var sum, count int64
	for _, review := range st.s.reviews {
		if review.Approved && review.ActivityID == activityID {
			sum += int64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
