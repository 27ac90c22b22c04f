// Package memory is the volatile fallback storage used when no database is
// reachable. Data is lost on restart; main logs a warning when this mode is
// selected.
package memory

import (
	"sort"
	"sync"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds all five collections behind a single RWMutex. The request
// volume of a tour operator's site does not warrant finer locking.
type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*entity.User
	sessions   map[uuid.UUID]*entity.Session
	activities map[uuid.UUID]*entity.Activity
	bookings   map[uuid.UUID]*entity.Booking
	reviews    map[uuid.UUID]*entity.Review
	auditLogs  []*entity.AuditLog
	log        *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		users:      make(map[uuid.UUID]*entity.User),
		sessions:   make(map[uuid.UUID]*entity.Session),
		activities: make(map[uuid.UUID]*entity.Activity),
		bookings:   make(map[uuid.UUID]*entity.Booking),
		reviews:    make(map[uuid.UUID]*entity.Review),
		log:        log.With(zap.String("repository", "memory")),
	}
}

// NewRepository wires the store into the same Repository shape the postgres
// implementations use, so the rest of the app cannot tell them apart.
func NewRepository(log *zap.Logger) *repository.Repository {
	s := NewStore(log)
	return &repository.Repository{
		User:     &userStore{s},
		Session:  &sessionStore{s},
		Activity: &activityStore{s},
		Booking:  &bookingStore{s},
		Review:   &reviewStore{s},
		AuditLog: &auditLogStore{s},
	}
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func copyActivity(a *entity.Activity) *entity.Activity {
	c := *a
	c.Photos = append([]string(nil), a.Photos...)
	return &c
}

func copyBooking(b *entity.Booking) *entity.Booking {
	c := *b
	c.ParticipantNames = append([]string(nil), b.ParticipantNames...)
	return &c
}

func copyReview(r *entity.Review) *entity.Review {
	c := *r
	return &c
}

func sortByCreatedDesc[T any](items []*T, created func(*T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return created(items[i]).After(created(items[j]))
	})
}
