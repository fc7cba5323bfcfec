package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pomo/internal/modules/task/domain"
	"pomo/internal/modules/task/service"
	"pomo/internal/modules/task/usecase"
	apperrors "pomo/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct {
	next string
}

func (f fakeID) New() string { return f.next }

type memTaskStore struct {
	tasks []domain.Task
}

func (s *memTaskStore) Insert(_ context.Context, task domain.Task) error {
	for _, existing := range s.tasks {
		if existing.Name == task.Name {
			return apperrors.ErrInvalidInput
		}
	}
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *memTaskStore) FindByName(_ context.Context, name string) (domain.Task, error) {
	for _, existing := range s.tasks {
		if existing.Name == name {
			return existing, nil
		}
	}
	return domain.Task{}, apperrors.ErrNotFound
}

func (s *memTaskStore) List(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

type fakeUsage struct {
	totals map[string]domain.Usage
}

func (f fakeUsage) Usage(context.Context) (map[string]domain.Usage, error) {
	return f.totals, nil
}

func TestAddTrimsAndValidatesName(t *testing.T) {
	t.Parallel()
	store := &memTaskStore{}
	uc := usecase.NewInteractor(service.NewTaskService(fakeClock{now: time.Now()}, fakeID{next: "task-1"}), store, nil)

	out, err := uc.Add(context.Background(), "  reading  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.Name != "reading" || out.ID != "task-1" {
		t.Fatalf("unexpected task: %+v", out)
	}
	if _, err := uc.Add(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := uc.Add(context.Background(), "reading"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate, got %v", err)
	}
}

func TestEnsureCreatesOnceThenReuses(t *testing.T) {
	t.Parallel()
	store := &memTaskStore{}
	uc := usecase.NewInteractor(service.NewTaskService(fakeClock{now: time.Now()}, fakeID{next: "task-1"}), store, nil)

	first, err := uc.Ensure(context.Background(), "reading")
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	second, err := uc.Ensure(context.Background(), " reading ")
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ensure must reuse the task, got %s vs %s", first.ID, second.ID)
	}
	if len(store.tasks) != 1 {
		t.Fatalf("expected a single stored task, got %d", len(store.tasks))
	}
}

func TestListMergesUsageTotals(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 8, 17, 9, 0, 0, 0, time.Local)
	store := &memTaskStore{tasks: []domain.Task{
		{ID: "task-1", Name: "reading", CreatedAt: created},
		{ID: "task-2", Name: "writing", CreatedAt: created.Add(time.Hour)},
	}}
	usage := fakeUsage{totals: map[string]domain.Usage{
		"task-1": {CompletedCount: 4, FocusMinutes: 100},
	}}
	uc := usecase.NewInteractor(service.NewTaskService(fakeClock{now: created}, fakeID{}), store, usage)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "writing" {
		t.Fatalf("expected newest first, got %s", items[0].Name)
	}
	if items[1].CompletedCount != 4 || items[1].FocusMinutes != 100 {
		t.Fatalf("expected usage merged onto reading, got %+v", items[1])
	}
	if items[0].CompletedCount != 0 {
		t.Fatalf("task without sessions must report zero totals, got %+v", items[0])
	}
}
