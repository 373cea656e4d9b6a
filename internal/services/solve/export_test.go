package solve

import (
	"time"

	"elevhtn/internal/domain"
)

// SetClock replaces the time source and request id generator in tests.
func (s *Service) SetClock(now func() time.Time, newID func() domain.RequestID) {
	s.now = now
	s.newID = newID
}
