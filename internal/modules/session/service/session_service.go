package service

import (
	"fmt"
	"time"

	"pomo/internal/modules/session/domain"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/dates"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/id"
)

// SessionService owns the clock-and-id side of session transitions so
// the interactor stays deterministic under test.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

// Begin validates the plan and assembles a running session stamped with
// the current local day.
func (s *SessionService) Begin(taskID string, plannedMin int) (domain.Session, error) {
	if plannedMin <= 0 {
		return domain.Session{}, fmt.Errorf("%w: planned duration must be a positive number of minutes", apperrors.ErrInvalidInput)
	}
	now := s.clock.Now()
	return domain.NewRunning(s.idGen.New(), taskID, now, plannedMin, dates.Day(now)), nil
}

func (s *SessionService) Complete(active domain.Session) (domain.Session, error) {
	return active.Complete(s.clock.Now())
}

func (s *SessionService) Interrupt(active domain.Session, reason string) (domain.Session, error) {
	return active.Interrupt(s.clock.Now(), reason)
}

// Expired reports whether the running session is past its abandonment
// deadline under the given grace.
func (s *SessionService) Expired(active domain.Session, graceMin int) bool {
	return active.Expired(s.clock.Now(), graceMin)
}

func (s *SessionService) Now() time.Time {
	return s.clock.Now()
}
