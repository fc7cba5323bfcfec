package domain

import (
	"fmt"
	"strconv"

	apperrors "pomo/internal/platform/errors"
)

type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Key enumerates the durable settings. Anything else is rejected.
type Key string

const (
	// KeyDailyGoal is the completed-session target a day must reach to
	// count as met.
	KeyDailyGoal Key = "daily_goal"
	// KeyGraceMin is the grace window, in minutes, past the planned end
	// before a running session is abandoned. -1 selects the default of
	// one planned duration.
	KeyGraceMin Key = "grace_min"
	// KeyNotify toggles the end-of-session desktop notification.
	KeyNotify Key = "notify"
	// KeyStreakZeroGoal decides whether a day with no sessions counts
	// as met when the daily goal is zero.
	KeyStreakZeroGoal Key = "streak_zero_goal"
)

type Definition struct {
	Key     Key
	Kind    Kind
	Default string
}

// Definitions lists every key in display order.
func Definitions() []Definition {
	return []Definition{
		{Key: KeyDailyGoal, Kind: KindInt, Default: "8"},
		{Key: KeyGraceMin, Kind: KindInt, Default: "-1"},
		{Key: KeyNotify, Kind: KindString, Default: "off"},
		{Key: KeyStreakZeroGoal, Kind: KindString, Default: "unmet"},
	}
}

func Lookup(key Key) (Definition, bool) {
	for _, def := range Definitions() {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}

// Validate checks a raw value against its key's constraints.
func Validate(key Key, raw string) error {
	def, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: unknown key %q", apperrors.ErrInvalidConfig, string(key))
	}
	switch def.Kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s wants an integer, got %q", apperrors.ErrInvalidConfig, key, raw)
		}
		if key == KeyDailyGoal && n < 0 {
			return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrInvalidConfig, key)
		}
		if key == KeyGraceMin && n < -1 {
			return fmt.Errorf("%w: %s must be -1 or more", apperrors.ErrInvalidConfig, key)
		}
	case KindString:
		if key == KeyNotify && raw != "on" && raw != "off" {
			return fmt.Errorf("%w: %s wants on or off, got %q", apperrors.ErrInvalidConfig, key, raw)
		}
		if key == KeyStreakZeroGoal && raw != "met" && raw != "unmet" {
			return fmt.Errorf("%w: %s wants met or unmet, got %q", apperrors.ErrInvalidConfig, key, raw)
		}
	}
	return nil
}
