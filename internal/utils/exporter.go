package utils

import (
	"fmt"

	"book-review-service/internal/models"
)

func ExportData(logs []models.AuditLog) error {
	for _, log := range logs {
		//change with actual calls
		fmt.Println(log.Timestamp, log.ID, log.Entity, log.Action, log.PerformedBy)
	}
	return nil
}
