package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pomo/internal/modules/session/domain"
	sessionout "pomo/internal/modules/session/port/out"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

const sessionColumns = `id, task_id, start_time, planned_duration, status, end_time, actual_duration, interruption_reason, date`

type SQLiteSessionStore struct {
	db *sqlite.DB
}

func NewSQLiteSessionStore(db *sqlite.DB) sessionout.SessionStore {
	return &SQLiteSessionStore{db: db}
}

func (s *SQLiteSessionStore) Insert(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO sessions (` + sessionColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.Querier(ctx).ExecContext(ctx, stmt,
		session.ID,
		nullString(session.TaskID),
		session.StartedAt.Format(timeLayout),
		session.PlannedMin,
		string(session.Status),
		nullTime(session.EndedAt),
		nullActual(session),
		nullString(session.Reason),
		session.Date,
	)
	if err != nil {
		// The partial unique index rejects a second running row.
		if isUniqueViolation(err) {
			return apperrors.ErrActiveSessionExists
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Update(ctx context.Context, session domain.Session) error {
	const stmt = `
UPDATE sessions
SET status = ?, end_time = ?, actual_duration = ?, interruption_reason = ?
WHERE id = ? AND status = 'running';
`
	res, err := s.db.Querier(ctx).ExecContext(ctx, stmt,
		string(session.Status),
		nullTime(session.EndedAt),
		nullActual(session),
		nullString(session.Reason),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNoActiveSession
	}
	return nil
}

func (s *SQLiteSessionStore) Running(ctx context.Context) (domain.Session, error) {
	const stmt = `SELECT ` + sessionColumns + ` FROM sessions WHERE status = 'running' LIMIT 1;`
	var session domain.Session
	if err := scanSession(s.db.Querier(ctx).QueryRowContext(ctx, stmt), &session); err != nil {
		if err == sql.ErrNoRows {
			return domain.Session{}, apperrors.ErrNoActiveSession
		}
		return domain.Session{}, fmt.Errorf("load running session: %w", err)
	}
	return session, nil
}

func (s *SQLiteSessionStore) ListBetween(ctx context.Context, from, to string) ([]domain.Session, error) {
	const stmt = `SELECT ` + sessionColumns + ` FROM sessions WHERE date >= ? AND date <= ? ORDER BY start_time;`
	return s.list(ctx, stmt, from, to)
}

func (s *SQLiteSessionStore) ListAll(ctx context.Context) ([]domain.Session, error) {
	const stmt = `SELECT ` + sessionColumns + ` FROM sessions ORDER BY start_time DESC;`
	return s.list(ctx, stmt)
}

func (s *SQLiteSessionStore) list(ctx context.Context, stmt string, args ...any) ([]domain.Session, error) {
	rows, err := s.db.Querier(ctx).QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var session domain.Session
		if err := scanSession(rows, &session); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(scanner interface{ Scan(...any) error }, session *domain.Session) error {
	var (
		taskID    sql.NullString
		startTime string
		status    string
		endTime   sql.NullString
		actual    sql.NullInt64
		reason    sql.NullString
	)
	if err := scanner.Scan(&session.ID, &taskID, &startTime, &session.PlannedMin, &status, &endTime, &actual, &reason, &session.Date); err != nil {
		return err
	}
	started, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return fmt.Errorf("parse start time: %w", err)
	}
	session.StartedAt = started
	session.TaskID = taskID.String
	session.Status = domain.Status(status)
	session.Reason = reason.String
	session.ActualMin = int(actual.Int64)
	if endTime.Valid {
		ended, err := time.Parse(timeLayout, endTime.String)
		if err != nil {
			return fmt.Errorf("parse end time: %w", err)
		}
		session.EndedAt = ended
	}
	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}

func nullActual(session domain.Session) any {
	if !session.Status.Terminal() {
		return nil
	}
	return session.ActualMin
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
