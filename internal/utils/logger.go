package utils

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-review-service/internal/models"
	"book-review-service/internal/store"
)

type Logger struct {
	Trail *store.AuditTrail
}

func (l *Logger) Log(ctx context.Context, entity, action, performedBy string, data any) error {
	l.Trail.Append(models.AuditLog{
		ID:          uuid.New(),
		Timestamp:   time.Now(),
		Entity:      entity,
		Action:      action,
		PerformedBy: performedBy,
		Data:        data,
	})
	return nil
}
