package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Entity      string    `json:"entity"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"` // could be a username or system
	Data        any       `json:"data"`         // raw payload
	Exported    bool      `json:"exported"`
}
