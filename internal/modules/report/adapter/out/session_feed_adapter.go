package out

import (
	"context"

	"pomo/internal/modules/report/domain"
	reportout "pomo/internal/modules/report/port/out"
	sessiondto "pomo/internal/modules/session/dto"
	sessionin "pomo/internal/modules/session/port/in"
)

// SessionFeedAdapter feeds the aggregations from the session module's
// history, translated into the report's own session shape.
type SessionFeedAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionFeedAdapter(sessions sessionin.Usecase) reportout.SessionFeed {
	return &SessionFeedAdapter{sessions: sessions}
}

func (a *SessionFeedAdapter) Between(ctx context.Context, from, to string) ([]domain.Session, error) {
	records, err := a.sessions.History(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return feedSessions(records), nil
}

func (a *SessionFeedAdapter) All(ctx context.Context) ([]domain.Session, error) {
	records, err := a.sessions.Export(ctx)
	if err != nil {
		return nil, err
	}
	return feedSessions(records), nil
}

func feedSessions(records []sessiondto.Record) []domain.Session {
	sessions := make([]domain.Session, 0, len(records))
	for _, record := range records {
		s := domain.Session{Date: record.Date, Status: record.Status}
		if record.ActualDuration != nil {
			s.ActualMin = *record.ActualDuration
		}
		sessions = append(sessions, s)
	}
	return sessions
}
