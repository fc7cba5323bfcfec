package dto

import "time"

type StartInput struct {
	TaskName   string
	PlannedMin int
}

type StartOutput struct {
	SessionID  string
	TaskID     string
	TaskName   string
	StartedAt  time.Time
	PlannedMin int
	PlannedEnd time.Time
}

// FinishOutput describes a session that just reached a terminal state,
// whether by complete, interrupt, or reconciliation.
type FinishOutput struct {
	SessionID string
	Status    string
	TaskID    string
	StartedAt time.Time
	EndedAt   time.Time
	ActualMin int
	Reason    string
}

type ActiveOutput struct {
	SessionID  string
	TaskID     string
	StartedAt  time.Time
	PlannedMin int
	PlannedEnd time.Time
}

// Record is the portable session shape used by export and the report
// feed. Nullable fields stay pointers so an unfinished session survives
// a JSON round trip unchanged.
type Record struct {
	ID                 string  `json:"id"`
	StartTime          string  `json:"start_time"`
	EndTime            *string `json:"end_time"`
	PlannedDuration    int     `json:"planned_duration"`
	ActualDuration     *int    `json:"actual_duration"`
	Status             string  `json:"status"`
	TaskID             *string `json:"task_id"`
	InterruptionReason *string `json:"interruption_reason"`
	Date               string  `json:"date"`
}

// ReconcileOutput reports what the pre-command sweep did.
type ReconcileOutput struct {
	Abandoned []FinishOutput
}
