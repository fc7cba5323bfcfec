package service

import (
	"strings"

	"pomo/internal/modules/config/domain"
)

// ConfigService normalizes and validates raw key-value writes before
// they reach the store.
type ConfigService struct{}

func NewConfigService() *ConfigService {
	return &ConfigService{}
}

func (s *ConfigService) Normalize(key, value string) (domain.Key, string, error) {
	k := domain.Key(strings.TrimSpace(strings.ToLower(key)))
	v := strings.TrimSpace(value)
	if err := domain.Validate(k, v); err != nil {
		return "", "", err
	}
	return k, v, nil
}
