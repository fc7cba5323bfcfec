package logging

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

// New builds the process logger. Diagnostics go to stderr so report
// output on stdout stays machine-readable; POMO_LOG raises verbosity.
func New() hclog.Logger {
	level := hclog.Warn
	if v := os.Getenv("POMO_LOG"); v != "" {
		level = hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			level = hclog.Warn
		}
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pomo",
		Level:  level,
		Output: os.Stderr,
	})
}
