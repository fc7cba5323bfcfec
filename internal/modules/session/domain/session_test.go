package domain_test

import (
	"testing"
	"time"

	"pomo/internal/modules/session/domain"
)

func TestCompleteRecordsMeasuredMinutes(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	session := domain.NewRunning("s-1", "t-1", start, 25, "2026-08-17")

	done, err := session.Complete(start.Add(45 * time.Minute))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Fatalf("status = %s, want completed", done.Status)
	}
	if done.ActualMin != 45 {
		t.Fatalf("actual = %d, want 45 measured minutes", done.ActualMin)
	}
	if !done.EndedAt.Equal(start.Add(45 * time.Minute)) {
		t.Fatalf("unexpected end time %v", done.EndedAt)
	}
	if done.Date != "2026-08-17" {
		t.Fatalf("date must stay fixed at start, got %s", done.Date)
	}

	early, err := domain.NewRunning("s-2", "", start, 25, "2026-08-17").Complete(start.Add(10 * time.Minute))
	if err != nil {
		t.Fatalf("early complete: %v", err)
	}
	if early.ActualMin != 10 {
		t.Fatalf("early actual = %d, want the measured 10, not the plan", early.ActualMin)
	}
}

func TestInterruptKeepsReason(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	session := domain.NewRunning("s-1", "", start, 25, "2026-08-17")

	stopped, err := session.Interrupt(start.Add(10*time.Minute), "phone call")
	if err != nil {
		t.Fatalf("interrupt: %v", err)
	}
	if stopped.Status != domain.StatusInterrupted {
		t.Fatalf("status = %s, want interrupted", stopped.Status)
	}
	if stopped.ActualMin != 10 {
		t.Fatalf("actual = %d, want 10", stopped.ActualMin)
	}
	if stopped.Reason != "phone call" {
		t.Fatalf("reason = %q", stopped.Reason)
	}
}

func TestTerminalSessionRejectsFurtherTransitions(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	session := domain.NewRunning("s-1", "", start, 25, "2026-08-17")
	done, err := session.Complete(start.Add(25 * time.Minute))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := done.Complete(start.Add(30 * time.Minute)); err == nil {
		t.Fatalf("expected second complete to fail")
	}
	if _, err := done.Interrupt(start.Add(30*time.Minute), "x"); err == nil {
		t.Fatalf("expected interrupt after complete to fail")
	}
	if _, err := done.Abandon(); err == nil {
		t.Fatalf("expected abandon after complete to fail")
	}
}

func TestAbandonClosesAtPlannedEnd(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	session := domain.NewRunning("s-1", "", start, 25, "2026-08-17")

	closed, err := session.Abandon()
	if err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if closed.Status != domain.StatusAbandoned {
		t.Fatalf("status = %s, want abandoned", closed.Status)
	}
	if !closed.EndedAt.Equal(start.Add(25 * time.Minute)) {
		t.Fatalf("end = %v, want planned end", closed.EndedAt)
	}
	if closed.ActualMin != 25 {
		t.Fatalf("actual = %d, want the planned 25", closed.ActualMin)
	}
}

func TestDeadlineDefaultsGraceToPlannedDuration(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	session := domain.NewRunning("s-1", "", start, 25, "2026-08-17")

	// Default grace equals the plan: a 25 minute session started at
	// 10:00 abandons after 10:50.
	if got, want := session.Deadline(-1), start.Add(50*time.Minute); !got.Equal(want) {
		t.Fatalf("default deadline = %v, want %v", got, want)
	}
	if got, want := session.Deadline(5), start.Add(30*time.Minute); !got.Equal(want) {
		t.Fatalf("deadline with 5min grace = %v, want %v", got, want)
	}
	if got, want := session.Deadline(0), start.Add(25*time.Minute); !got.Equal(want) {
		t.Fatalf("deadline with zero grace = %v, want %v", got, want)
	}
}

func TestExpiredIsStrictlyAfterDeadline(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	session := domain.NewRunning("s-1", "", start, 25, "2026-08-17")

	if session.Expired(start.Add(50*time.Minute), -1) {
		t.Fatalf("session exactly at deadline must not be expired")
	}
	if !session.Expired(start.Add(50*time.Minute+time.Second), -1) {
		t.Fatalf("session past deadline must be expired")
	}
	done, err := session.Complete(start.Add(20 * time.Minute))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Expired(start.Add(2*time.Hour), -1) {
		t.Fatalf("terminal session can never expire")
	}
}

func TestElapsedMinNeverNegative(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 17, 10, 0, 0, 0, time.Local)
	if got := domain.ElapsedMin(now, now.Add(90*time.Second)); got != 1 {
		t.Fatalf("elapsed = %d, want 1", got)
	}
	if got := domain.ElapsedMin(now, now.Add(-5*time.Minute)); got != 0 {
		t.Fatalf("elapsed after clock skew = %d, want 0", got)
	}
}
