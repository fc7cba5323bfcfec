package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pomo/internal/modules/config/domain"
	"pomo/internal/modules/config/dto"
	configin "pomo/internal/modules/config/port/in"
	configout "pomo/internal/modules/config/port/out"
	"pomo/internal/modules/config/service"
	apperrors "pomo/internal/platform/errors"
)

type Interactor struct {
	svc   *service.ConfigService
	store configout.ConfigStore
}

func NewInteractor(svc *service.ConfigService, store configout.ConfigStore) configin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) Get(ctx context.Context, key string) (dto.Entry, error) {
	k := domain.Key(strings.TrimSpace(strings.ToLower(key)))
	def, ok := domain.Lookup(k)
	if !ok {
		return dto.Entry{}, fmt.Errorf("%w: unknown key %q", apperrors.ErrInvalidConfig, key)
	}
	value, err := i.store.Get(ctx, string(k))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return entry(def, def.Default, true), nil
		}
		return dto.Entry{}, err
	}
	return entry(def, value, false), nil
}

func (i *Interactor) Set(ctx context.Context, key, value string) (dto.Entry, error) {
	k, v, err := i.svc.Normalize(key, value)
	if err != nil {
		return dto.Entry{}, err
	}
	if err := i.store.Set(ctx, string(k), v); err != nil {
		return dto.Entry{}, err
	}
	def, _ := domain.Lookup(k)
	return entry(def, v, false), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.Entry, error) {
	stored, err := i.store.All(ctx)
	if err != nil {
		return nil, err
	}
	defs := domain.Definitions()
	entries := make([]dto.Entry, 0, len(defs))
	for _, def := range defs {
		if value, ok := stored[string(def.Key)]; ok {
			entries = append(entries, entry(def, value, false))
			continue
		}
		entries = append(entries, entry(def, def.Default, true))
	}
	return entries, nil
}

func (i *Interactor) Goal(ctx context.Context) (int, error) {
	return i.intValue(ctx, domain.KeyDailyGoal)
}

func (i *Interactor) GraceMin(ctx context.Context) (int, error) {
	return i.intValue(ctx, domain.KeyGraceMin)
}

func (i *Interactor) NotifyEnabled(ctx context.Context) (bool, error) {
	e, err := i.Get(ctx, string(domain.KeyNotify))
	if err != nil {
		return false, err
	}
	return e.Value == "on", nil
}

func (i *Interactor) StreakZeroGoalMet(ctx context.Context) (bool, error) {
	e, err := i.Get(ctx, string(domain.KeyStreakZeroGoal))
	if err != nil {
		return false, err
	}
	return e.Value == "met", nil
}

func (i *Interactor) intValue(ctx context.Context, key domain.Key) (int, error) {
	e, err := i.Get(ctx, string(key))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(e.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: stored %s %q is not an integer", apperrors.ErrInvalidConfig, key, e.Value)
	}
	return n, nil
}

func entry(def domain.Definition, value string, isDefault bool) dto.Entry {
	return dto.Entry{Key: string(def.Key), Value: value, Kind: string(def.Kind), IsDefault: isDefault}
}
