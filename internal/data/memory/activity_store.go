package memory

import (
	"context"
	"fmt"
	"time"

	"marrakech-tours/internal/data/entity"

	"github.com/google/uuid"
)

type activityStore struct {
	s *Store
}

func (st *activityStore) Create(ctx context.Context, activity *entity.Activity) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.activities[activity.ID] = copyActivity(activity)
	return nil
}

func (st *activityStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	activity, ok := st.s.activities[id]
	if !ok {
		return nil, nil
	}
	return copyActivity(activity), nil
}

func (st *activityStore) FindActive(ctx context.Context) ([]*entity.Activity, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var activities []*entity.Activity
	for _, activity := range st.s.activities {
		if activity.IsActive {
			activities = append(activities, copyActivity(activity))
		}
	}
	sortByCreatedAsc(activities)
	return activities, nil
}

func (st *activityStore) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	var activities []*entity.Activity
	for _, activity := range st.s.activities {
		activities = append(activities, copyActivity(activity))
	}
	sortByCreatedAsc(activities)
	return activities, nil
}

func sortByCreatedAsc(activities []*entity.Activity) {
	sortByCreatedDesc(activities, func(a *entity.Activity) time.Time { return a.CreatedAt })
	for i, j := 0, len(activities)-1; i < j; i, j = i+1, j-1 {
		activities[i], activities[j] = activities[j], activities[i]
	}
}

func (st *activityStore) Update(ctx context.Context, activity *entity.Activity) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.activities[activity.ID]; !ok {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}
	st.s.activities[activity.ID] = copyActivity(activity)
	return nil
}

func (st *activityStore) UpdateGetYourGuidePrice(ctx context.Context, id uuid.UUID, price int) (*entity.Activity, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	activity, ok := st.s.activities[id]
	if !ok {
		return nil, nil
	}
	activity.GetYourGuidePrice = &price
	activity.UpdatedAt = time.Now()
	return copyActivity(activity), nil
}

func (st *activityStore) Delete(ctx context.Context, id uuid.UUID) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.activities[id]; !ok {
		return fmt.Errorf("activity %s not found", id.String())
	}
	delete(st.s.activities, id)
	return nil
}

func (st *activityStore) Count(ctx context.Context) (int64, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	return int64(len(st.s.activities)), nil
}
