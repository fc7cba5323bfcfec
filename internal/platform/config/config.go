package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataDir       string
	DBPath        string
	ManifestsPath string
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	return Config{
		DataDir:       dataDir,
		DBPath:        filepath.Join(dataDir, "pomo.db"),
		ManifestsPath: filepath.Join(dataDir, "renderers.yaml"),
	}, nil
}

// Resolve picks the data directory: explicit flag first, then POMO_HOME,
// then ~/.pomo.
func Resolve(flagDir string) (Config, error) {
	if flagDir != "" {
		return New(flagDir)
	}
	if env := os.Getenv("POMO_HOME"); env != "" {
		return New(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return New(filepath.Join(home, ".pomo"))
}
