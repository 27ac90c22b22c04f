package memory

import (
	"context"
	"fmt"
	"time"

	"marrakech-tours/internal/data/entity"

	"github.com/google/uuid"
)

type sessionStore struct {
	s *Store
}

func (st *sessionStore) Create(ctx context.Context, session *entity.Session) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	c := *session
	st.s.sessions[session.Token] = &c
	return nil
}

func (st *sessionStore) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	session, ok := st.s.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	c := *session
	return &c, nil
}

func (st *sessionStore) Revoke(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("session not found or already revoked")
	}

	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	session, ok := st.s.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (st *sessionStore) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	now := time.Now()
	for _, session := range st.s.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}
