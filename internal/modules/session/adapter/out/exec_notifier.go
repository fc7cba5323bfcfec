package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	sessionout "pomo/internal/modules/session/port/out"

	hclog "github.com/hashicorp/go-hclog"
)

// ExecNotifier schedules a desktop notification by detaching a sleeping
// shell that fires at the planned end. The process outlives this
// invocation, which is the point: the CLI itself never keeps a timer.
type ExecNotifier struct {
	logger hclog.Logger
}

func NewExecNotifier(logger hclog.Logger) sessionout.Notifier {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ExecNotifier{logger: logger}
}

func (n *ExecNotifier) Schedule(_ context.Context, at time.Time, taskName string) error {
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	message := "Focus session finished"
	if taskName != "" {
		message = fmt.Sprintf("Focus session for %q finished", taskName)
	}

	var cmd *exec.Cmd
	seconds := int(delay.Seconds())
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("sleep %d; osascript -e 'display notification %q with title \"pomo\"'", seconds, message)
		cmd = exec.Command("sh", "-c", script)
	case "linux":
		script := fmt.Sprintf("sleep %d; notify-send pomo %q", seconds, message)
		cmd = exec.Command("sh", "-c", script)
	default:
		n.logger.Debug("notifications unsupported on platform", "goos", runtime.GOOS)
		return fmt.Errorf("notifications are not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		n.logger.Warn("schedule notification", "error", err)
		return fmt.Errorf("schedule notification: %w", err)
	}
	// Detach: the shell keeps running after we exit.
	if err := cmd.Process.Release(); err != nil {
		n.logger.Debug("release notifier process", "error", err)
	}
	return nil
}
