package daemon

import (
	"log"
	"time"

	"book-review-service/internal/session"
)

// SessionSweeper reclaims expired sessions in the background. Resolve
// already treats expired sessions as absent; the sweeper only keeps the
// table from growing.
type SessionSweeper struct {
	Sessions *session.Manager
	Interval time.Duration
}

func (s *SessionSweeper) InitSessionSweeper() {
	interval := s.Interval
	if interval == 0 {
		interval = time.Minute
	}

	go func() {
		for {
			if removed := s.Sessions.Sweep(); removed > 0 {
				log.Println("Swept expired sessions:", removed)
			}
			time.Sleep(interval)
		}
	}()
}
