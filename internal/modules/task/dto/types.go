package dto

import "time"

type TaskOutput struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// TaskItem is a task plus its derived session totals, as shown by the
// task list.
type TaskItem struct {
	ID             string
	Name           string
	CreatedAt      time.Time
	CompletedCount int
	FocusMinutes   int
}
