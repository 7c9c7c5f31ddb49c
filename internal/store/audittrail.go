package store

import (
	"sync"

	"github.com/google/uuid"

	"book-review-service/internal/models"
)

// AuditTrail collects audit entries in memory until the exporter
// daemon drains them.
type AuditTrail struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func NewAuditTrail() *AuditTrail {
	return &AuditTrail{}
}

func (t *AuditTrail) Append(entry models.AuditLog) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
}

// Unexported returns copies of the entries not yet exported.
func (t *AuditTrail) Unexported() []models.AuditLog {
	t.mu.Lock()
	defer t.mu.Unlock()

	var logs []models.AuditLog
	for _, entry := range t.entries {
		if !entry.Exported {
			logs = append(logs, entry)
		}
	}
	return logs
}

func (t *AuditTrail) MarkExported(ids []uuid.UUID) {
	exported := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		exported[id] = true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.entries {
		if exported[t.entries[i].ID] {
			t.entries[i].Exported = true
		}
	}
}
