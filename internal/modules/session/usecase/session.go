package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	configin "pomo/internal/modules/config/port/in"
	"pomo/internal/modules/session/domain"
	sessiondto "pomo/internal/modules/session/dto"
	sessionin "pomo/internal/modules/session/port/in"
	sessionout "pomo/internal/modules/session/port/out"
	"pomo/internal/modules/session/service"
	taskin "pomo/internal/modules/task/port/in"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/tx"
)

type Interactor struct {
	svc      *service.SessionService
	store    sessionout.SessionStore
	txm      tx.Manager
	tasks    taskin.Usecase
	cfg      configin.Usecase
	notifier sessionout.Notifier
}

func NewInteractor(svc *service.SessionService, store sessionout.SessionStore, txm tx.Manager, tasks taskin.Usecase, cfg configin.Usecase, notifier sessionout.Notifier) sessionin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &Interactor{svc: svc, store: store, txm: txm, tasks: tasks, cfg: cfg, notifier: notifier}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	taskID := ""
	taskName := strings.TrimSpace(input.TaskName)
	if taskName != "" {
		if i.tasks == nil {
			return sessiondto.StartOutput{}, fmt.Errorf("task usecase is not configured")
		}
		task, err := i.tasks.Ensure(ctx, taskName)
		if err != nil {
			return sessiondto.StartOutput{}, err
		}
		taskID = task.ID
	}

	session, err := i.svc.Begin(taskID, input.PlannedMin)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}

	// The check and the insert share one transaction; the partial unique
	// index on the sessions table backstops any racing invocation.
	err = i.txm.Within(ctx, func(ctx context.Context) error {
		_, err := i.store.Running(ctx)
		if err == nil {
			return apperrors.ErrActiveSessionExists
		}
		if !errors.Is(err, apperrors.ErrNoActiveSession) {
			return err
		}
		return i.store.Insert(ctx, session)
	})
	if err != nil {
		return sessiondto.StartOutput{}, err
	}

	if i.notifier != nil && i.notifyEnabled(ctx) {
		// Best effort; the adapter reports its own failures.
		_ = i.notifier.Schedule(ctx, session.PlannedEnd(), taskName)
	}

	return sessiondto.StartOutput{
		SessionID:  session.ID,
		TaskID:     session.TaskID,
		TaskName:   taskName,
		StartedAt:  session.StartedAt,
		PlannedMin: session.PlannedMin,
		PlannedEnd: session.PlannedEnd(),
	}, nil
}

func (i *Interactor) Complete(ctx context.Context) (sessiondto.FinishOutput, error) {
	return i.finish(ctx, func(active domain.Session) (domain.Session, error) {
		return i.svc.Complete(active)
	})
}

func (i *Interactor) Interrupt(ctx context.Context, reason string) (sessiondto.FinishOutput, error) {
	return i.finish(ctx, func(active domain.Session) (domain.Session, error) {
		return i.svc.Interrupt(active, reason)
	})
}

func (i *Interactor) finish(ctx context.Context, transition func(domain.Session) (domain.Session, error)) (sessiondto.FinishOutput, error) {
	var out sessiondto.FinishOutput
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		active, err := i.store.Running(ctx)
		if err != nil {
			return err
		}
		closed, err := transition(active)
		if err != nil {
			return err
		}
		if err := i.store.Update(ctx, closed); err != nil {
			return err
		}
		out = finishOutput(closed)
		return nil
	})
	if err != nil {
		return sessiondto.FinishOutput{}, err
	}
	return out, nil
}

func (i *Interactor) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	active, err := i.store.Running(ctx)
	if err != nil {
		return sessiondto.ActiveOutput{}, err
	}
	return sessiondto.ActiveOutput{
		SessionID:  active.ID,
		TaskID:     active.TaskID,
		StartedAt:  active.StartedAt,
		PlannedMin: active.PlannedMin,
		PlannedEnd: active.PlannedEnd(),
	}, nil
}

func (i *Interactor) Reconcile(ctx context.Context) (sessiondto.ReconcileOutput, error) {
	grace := -1
	if i.cfg != nil {
		g, err := i.cfg.GraceMin(ctx)
		if err != nil {
			return sessiondto.ReconcileOutput{}, err
		}
		grace = g
	}

	var out sessiondto.ReconcileOutput
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		active, err := i.store.Running(ctx)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoActiveSession) {
				return nil
			}
			return err
		}
		if !i.svc.Expired(active, grace) {
			return nil
		}
		closed, err := active.Abandon()
		if err != nil {
			return err
		}
		if err := i.store.Update(ctx, closed); err != nil {
			return err
		}
		out.Abandoned = append(out.Abandoned, finishOutput(closed))
		return nil
	})
	if err != nil {
		return sessiondto.ReconcileOutput{}, err
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, from, to string) ([]sessiondto.Record, error) {
	sessions, err := i.store.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return records(sessions), nil
}

func (i *Interactor) Export(ctx context.Context) ([]sessiondto.Record, error) {
	sessions, err := i.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return records(sessions), nil
}

func (i *Interactor) notifyEnabled(ctx context.Context) bool {
	if i.cfg == nil {
		return false
	}
	on, err := i.cfg.NotifyEnabled(ctx)
	return err == nil && on
}

func finishOutput(s domain.Session) sessiondto.FinishOutput {
	return sessiondto.FinishOutput{
		SessionID: s.ID,
		Status:    string(s.Status),
		TaskID:    s.TaskID,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		ActualMin: s.ActualMin,
		Reason:    s.Reason,
	}
}

func records(sessions []domain.Session) []sessiondto.Record {
	out := make([]sessiondto.Record, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, record(s))
	}
	return out
}

func record(s domain.Session) sessiondto.Record {
	rec := sessiondto.Record{
		ID:              s.ID,
		StartTime:       s.StartedAt.Format(time.RFC3339),
		PlannedDuration: s.PlannedMin,
		Status:          string(s.Status),
		Date:            s.Date,
	}
	if s.TaskID != "" {
		taskID := s.TaskID
		rec.TaskID = &taskID
	}
	if s.Status.Terminal() {
		endTime := s.EndedAt.Format(time.RFC3339)
		actual := s.ActualMin
		rec.EndTime = &endTime
		rec.ActualDuration = &actual
	}
	if s.Reason != "" {
		reason := s.Reason
		rec.InterruptionReason = &reason
	}
	return rec
}
