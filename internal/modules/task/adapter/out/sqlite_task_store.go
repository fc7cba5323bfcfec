package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pomo/internal/modules/task/domain"
	taskout "pomo/internal/modules/task/port/out"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteTaskStore persists tasks and derives their session totals from
// the sessions table in the same database.
type SQLiteTaskStore struct {
	db *sqlite.DB
}

var (
	_ taskout.TaskStore   = (*SQLiteTaskStore)(nil)
	_ taskout.UsageReader = (*SQLiteTaskStore)(nil)
)

func NewSQLiteTaskStore(db *sqlite.DB) *SQLiteTaskStore {
	return &SQLiteTaskStore{db: db}
}

func (s *SQLiteTaskStore) Insert(ctx context.Context, task domain.Task) error {
	const stmt = `INSERT INTO tasks (id, name, created_at, active) VALUES (?, ?, ?, ?);`
	_, err := s.db.Querier(ctx).ExecContext(ctx, stmt, task.ID, task.Name, task.CreatedAt.Format(timeLayout), task.Active)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: task %q already exists", apperrors.ErrInvalidInput, task.Name)
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) FindByName(ctx context.Context, name string) (domain.Task, error) {
	const stmt = `SELECT id, name, created_at, active FROM tasks WHERE name = ?;`
	task, err := scanTask(s.db.Querier(ctx).QueryRowContext(ctx, stmt, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Task{}, apperrors.ErrNotFound
		}
		return domain.Task{}, fmt.Errorf("find task by name: %w", err)
	}
	return task, nil
}

func (s *SQLiteTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	const stmt = `SELECT id, name, created_at, active FROM tasks ORDER BY created_at DESC, name;`
	rows, err := s.db.Querier(ctx).QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLiteTaskStore) Usage(ctx context.Context) (map[string]domain.Usage, error) {
	const stmt = `
SELECT task_id, COUNT(*), COALESCE(SUM(actual_duration), 0)
FROM sessions
WHERE status = 'completed' AND task_id IS NOT NULL
GROUP BY task_id;
`
	rows, err := s.db.Querier(ctx).QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("aggregate task usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]domain.Usage)
	for rows.Next() {
		var taskID string
		var use domain.Usage
		if err := rows.Scan(&taskID, &use.CompletedCount, &use.FocusMinutes); err != nil {
			return nil, fmt.Errorf("scan task usage: %w", err)
		}
		usage[taskID] = use
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task usage: %w", err)
	}
	return usage, nil
}

func scanTask(scanner interface{ Scan(...any) error }) (domain.Task, error) {
	var task domain.Task
	var createdAt string
	if err := scanner.Scan(&task.ID, &task.Name, &createdAt, &task.Active); err != nil {
		return domain.Task{}, err
	}
	created, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	task.CreatedAt = created
	return task, nil
}
