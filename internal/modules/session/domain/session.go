package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a focus session. Exactly one session
// may be running at a time; terminal states never change again.
type Status string

const (
	StatusRunning     Status = "running"
	StatusCompleted   Status = "completed"
	StatusInterrupted Status = "interrupted"
	StatusAbandoned   Status = "abandoned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRunning, StatusCompleted, StatusInterrupted, StatusAbandoned:
		return true
	}
	return false
}

// Terminal reports whether the status ends the session. EndedAt and
// ActualMin are meaningful only on terminal sessions.
func (s Status) Terminal() bool {
	return s.Valid() && s != StatusRunning
}

type Session struct {
	ID         string
	TaskID     string // empty when the session is not attached to a task
	StartedAt  time.Time
	PlannedMin int
	Status     Status
	EndedAt    time.Time
	ActualMin  int
	Reason     string // why the session was interrupted
	Date       string // local calendar day of StartedAt
}

// NewRunning assembles a running session. The date key is fixed at start
// so a session straddling midnight stays on the day it began.
func NewRunning(id, taskID string, startedAt time.Time, plannedMin int, date string) Session {
	return Session{
		ID:         id,
		TaskID:     taskID,
		StartedAt:  startedAt,
		PlannedMin: plannedMin,
		Status:     StatusRunning,
		Date:       date,
	}
}

// Complete ends a running session at now, recording measured minutes.
func (s Session) Complete(now time.Time) (Session, error) {
	return s.finish(StatusCompleted, now, "")
}

// Interrupt ends a running session early with the given reason.
func (s Session) Interrupt(now time.Time, reason string) (Session, error) {
	return s.finish(StatusInterrupted, now, reason)
}

// Abandon closes a session that outlived its grace window. The end time
// is the planned end, not the moment of discovery, and the measured
// minutes equal the plan: nothing past the planned end counts as focus.
func (s Session) Abandon() (Session, error) {
	if s.Status != StatusRunning {
		return Session{}, fmt.Errorf("abandon session %s: status is %s", s.ID, s.Status)
	}
	s.Status = StatusAbandoned
	s.EndedAt = s.PlannedEnd()
	s.ActualMin = s.PlannedMin
	return s, nil
}

func (s Session) finish(status Status, now time.Time, reason string) (Session, error) {
	if s.Status != StatusRunning {
		return Session{}, fmt.Errorf("finish session %s: status is %s", s.ID, s.Status)
	}
	s.Status = status
	s.EndedAt = now
	s.ActualMin = ElapsedMin(s.StartedAt, now)
	s.Reason = reason
	return s, nil
}

// PlannedEnd is the moment the session was meant to finish.
func (s Session) PlannedEnd() time.Time {
	return s.StartedAt.Add(time.Duration(s.PlannedMin) * time.Minute)
}

// Deadline is the abandonment cutoff: planned end plus grace. A negative
// graceMin selects the default grace of one planned duration.
func (s Session) Deadline(graceMin int) time.Time {
	if graceMin < 0 {
		graceMin = s.PlannedMin
	}
	return s.PlannedEnd().Add(time.Duration(graceMin) * time.Minute)
}

// Expired reports whether a running session is past its deadline and due
// for abandonment.
func (s Session) Expired(now time.Time, graceMin int) bool {
	return s.Status == StatusRunning && now.After(s.Deadline(graceMin))
}

// ElapsedMin measures whole minutes between two instants. A clock that
// moved backwards yields 0, never a negative duration.
func ElapsedMin(from, to time.Time) int {
	min := int(to.Sub(from).Minutes())
	if min < 0 {
		min = 0
	}
	return min
}
