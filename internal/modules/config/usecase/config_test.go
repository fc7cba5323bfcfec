package usecase_test

import (
	"context"
	"errors"
	"testing"

	configin "pomo/internal/modules/config/port/in"
	"pomo/internal/modules/config/service"
	"pomo/internal/modules/config/usecase"
	apperrors "pomo/internal/platform/errors"
)

type memConfigStore struct {
	values map[string]string
}

func newMemConfigStore() *memConfigStore {
	return &memConfigStore{values: make(map[string]string)}
}

func (s *memConfigStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (s *memConfigStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memConfigStore) All(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

func newUsecase() configin.Usecase {
	return usecase.NewInteractor(service.NewConfigService(), newMemConfigStore())
}

func TestGetFallsBackToDefault(t *testing.T) {
	t.Parallel()
	uc := newUsecase()

	entry, err := uc.Get(context.Background(), "daily_goal")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry.Value != "8" || !entry.IsDefault {
		t.Fatalf("expected default 8, got %+v", entry)
	}

	if _, err := uc.Get(context.Background(), "tomato_color"); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown key, got %v", err)
	}
}

func TestSetNormalizesAndPersists(t *testing.T) {
	t.Parallel()
	uc := newUsecase()

	entry, err := uc.Set(context.Background(), "  Daily_Goal  ", " 3 ")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if entry.Key != "daily_goal" || entry.Value != "3" || entry.IsDefault {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	got, err := uc.Get(context.Background(), "daily_goal")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Value != "3" || got.IsDefault {
		t.Fatalf("expected stored 3, got %+v", got)
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	uc := newUsecase()

	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative goal", key: "daily_goal", value: "-4"},
		{name: "non integer grace", key: "grace_min", value: "soon"},
		{name: "bad notify value", key: "notify", value: "maybe"},
		{name: "unknown key", key: "theme", value: "latte"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := uc.Set(context.Background(), tc.key, tc.value); !errors.Is(err, apperrors.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestListMergesStoredOverDefaults(t *testing.T) {
	t.Parallel()
	uc := newUsecase()

	if _, err := uc.Set(context.Background(), "notify", "on"); err != nil {
		t.Fatalf("set: %v", err)
	}

	entries, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	byKey := make(map[string]struct {
		value     string
		isDefault bool
	}, len(entries))
	for _, e := range entries {
		byKey[e.Key] = struct {
			value     string
			isDefault bool
		}{e.Value, e.IsDefault}
	}
	if got := byKey["notify"]; got.value != "on" || got.isDefault {
		t.Fatalf("notify = %+v, want stored on", got)
	}
	if got := byKey["daily_goal"]; got.value != "8" || !got.isDefault {
		t.Fatalf("daily_goal = %+v, want default 8", got)
	}
	// Display order is fixed by the registry, not the store.
	if entries[0].Key != "daily_goal" || entries[3].Key != "streak_zero_goal" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestTypedAccessors(t *testing.T) {
	t.Parallel()
	uc := newUsecase()

	goal, err := uc.Goal(context.Background())
	if err != nil || goal != 8 {
		t.Fatalf("goal = %d, %v; want default 8", goal, err)
	}
	grace, err := uc.GraceMin(context.Background())
	if err != nil || grace != -1 {
		t.Fatalf("grace = %d, %v; want default -1", grace, err)
	}
	notify, err := uc.NotifyEnabled(context.Background())
	if err != nil || notify {
		t.Fatalf("notify = %v, %v; want off by default", notify, err)
	}
	zeroMet, err := uc.StreakZeroGoalMet(context.Background())
	if err != nil || zeroMet {
		t.Fatalf("zero goal met = %v, %v; want unmet by default", zeroMet, err)
	}

	if _, err := uc.Set(context.Background(), "grace_min", "10"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := uc.Set(context.Background(), "streak_zero_goal", "met"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if grace, err = uc.GraceMin(context.Background()); err != nil || grace != 10 {
		t.Fatalf("grace = %d, %v; want 10", grace, err)
	}
	if zeroMet, err = uc.StreakZeroGoalMet(context.Background()); err != nil || !zeroMet {
		t.Fatalf("zero goal met = %v, %v; want met", zeroMet, err)
	}
}
