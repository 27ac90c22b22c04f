package memory

import (
	"context"

	"marrakech-tours/internal/data/entity"
)

type auditLogStore struct {
	s *Store
}

func (st *auditLogStore) Create(ctx context.Context, entry *entity.AuditLog) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	c := *entry
	st.s.auditLogs = append(st.s.auditLogs, &c)
	return nil
}

func (st *auditLogStore) FindRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	// Entries are appended in order; walk backwards for most recent first.
	var logs []*entity.AuditLog
	for i := len(st.s.auditLogs) - 1; i >= 0 && len(logs) < limit; i-- {
		c := *st.s.auditLogs[i]
		logs = append(logs, &c)
	}
	return logs, nil
}
