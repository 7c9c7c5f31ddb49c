package daemon

import (
	"time"

	"github.com/google/uuid"

	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

type LogExporter struct {
	Trail    *store.AuditTrail
	Interval time.Duration
}

func (l *LogExporter) InitLogExporter() {
	interval := l.Interval
	if interval == 0 {
		interval = 30 * time.Second
	}

	go func() {
		for {
			logs := l.Trail.Unexported()

			if len(logs) > 0 {
				_ = utils.ExportData(logs)

				exportedIds := []uuid.UUID{}
				for i := 0; i < len(logs); i++ {
					exportedIds = append(exportedIds, logs[i].ID)
				}
				l.Trail.MarkExported(exportedIds)
			}
			time.Sleep(interval)
		}
	}()
}
