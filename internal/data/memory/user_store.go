package memory

import (
	"context"

	"marrakech-tours/internal/data/entity"

	"github.com/google/uuid"
)

type userStore struct {
	s *Store
}

func (st *userStore) Create(ctx context.Context, user *entity.User) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.users[user.ID] = copyUser(user)
	return nil
}

func (st *userStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	user, ok := st.s.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (st *userStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	for _, user := range st.s.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, nil
}

func (st *userStore) Count(ctx context.Context) (int64, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	return int64(len(st.s.users)), nil
}
