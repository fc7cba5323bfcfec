package usecase

import (
	"context"
	"errors"
	"strings"

	"pomo/internal/modules/task/domain"
	"pomo/internal/modules/task/dto"
	taskin "pomo/internal/modules/task/port/in"
	taskout "pomo/internal/modules/task/port/out"
	"pomo/internal/modules/task/service"
	apperrors "pomo/internal/platform/errors"
)

type Interactor struct {
	svc   *service.TaskService
	store taskout.TaskStore
	usage taskout.UsageReader
}

func NewInteractor(svc *service.TaskService, store taskout.TaskStore, usage taskout.UsageReader) taskin.Usecase {
	return &Interactor{svc: svc, store: store, usage: usage}
}

func (i *Interactor) Add(ctx context.Context, name string) (dto.TaskOutput, error) {
	task, err := i.svc.Create(name)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	if err := i.store.Insert(ctx, task); err != nil {
		return dto.TaskOutput{}, err
	}
	return taskOutput(task), nil
}

func (i *Interactor) Ensure(ctx context.Context, name string) (dto.TaskOutput, error) {
	name = strings.TrimSpace(name)
	task, err := i.store.FindByName(ctx, name)
	if err == nil {
		return taskOutput(task), nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return dto.TaskOutput{}, err
	}
	return i.Add(ctx, name)
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskItem, error) {
	tasks, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}
	totals := map[string]domain.Usage{}
	if i.usage != nil {
		totals, err = i.usage.Usage(ctx)
		if err != nil {
			return nil, err
		}
	}
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		use := totals[task.ID]
		items = append(items, dto.TaskItem{
			ID:             task.ID,
			Name:           task.Name,
			CreatedAt:      task.CreatedAt,
			CompletedCount: use.CompletedCount,
			FocusMinutes:   use.FocusMinutes,
		})
	}
	return items, nil
}

func taskOutput(task domain.Task) dto.TaskOutput {
	return dto.TaskOutput{ID: task.ID, Name: task.Name, CreatedAt: task.CreatedAt}
}
