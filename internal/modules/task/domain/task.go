package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a named bucket sessions can attach to. Its session totals are
// derived from the session history, never stored. Everything but Active
// is immutable once a session references the task.
type Task struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Active    bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Usage is a task's derived session footprint: completed sessions and
// the focus minutes they measured.
type Usage struct {
	CompletedCount int
	FocusMinutes   int
}
