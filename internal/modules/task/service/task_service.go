package service

import (
	"fmt"
	"strings"

	"pomo/internal/modules/task/domain"
	"pomo/internal/platform/clock"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/id"
)

type TaskService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewTaskService(clock clock.Clock, idGen id.Generator) *TaskService {
	return &TaskService{clock: clock, idGen: idGen}
}

// Create validates the name and assembles a new task.
func (s *TaskService) Create(name string) (domain.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Task{}, fmt.Errorf("%w: task name is required", apperrors.ErrInvalidInput)
	}
	return domain.Task{ID: s.idGen.New(), Name: name, CreatedAt: s.clock.Now(), Active: true}, nil
}
