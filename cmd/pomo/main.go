package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pomo/internal/bootstrap"
	"pomo/internal/platform/config"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/logging"
	"pomo/internal/ui/console"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro focus session tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default $POMO_HOME or ~/.pomo)")

	root.AddCommand(newStartCmd(&dataDir))
	root.AddCommand(newCompleteCmd(&dataDir))
	root.AddCommand(newInterruptCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newWatchCmd(&dataDir))
	root.AddCommand(newTodayCmd(&dataDir))
	root.AddCommand(newWeekCmd(&dataDir))
	root.AddCommand(newHeatmapCmd(&dataDir))
	root.AddCommand(newTaskCmd(&dataDir))
	root.AddCommand(newConfigCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newRendererCmd(&dataDir))
	return root
}

// loadApp wires the module graph and sweeps stale sessions before the
// command proper runs, so every invocation observes reconciled state.
func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.Resolve(dataDir)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg, logging.New())
	if err != nil {
		return nil, err
	}
	swept, err := app.SessionCLI.Reconcile(context.Background())
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	for _, s := range swept.Abandoned {
		app.Logger.Info("marked stale session abandoned",
			"session_id", s.SessionID, "ended_at", s.EndedAt.Format(time.RFC3339))
	}
	return app, nil
}

func newStartCmd(dataDir *string) *cobra.Command {
	var taskName string
	var duration int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Start(context.Background(), taskName, duration)
			if err != nil {
				return err
			}
			console.StartBanner(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&taskName, "task", "", "attach the session to a task (created if missing)")
	cmd.Flags().IntVar(&duration, "duration", 25, "planned minutes")
	return cmd
}

func newCompleteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Complete the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Complete(context.Background())
			if err != nil {
				return err
			}
			console.FinishBanner(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newInterruptCmd(dataDir *string) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "interrupt",
		Short: "Interrupt the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Interrupt(context.Background(), reason)
			if err != nil {
				return err
			}
			console.FinishBanner(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "Unknown", "why the session stopped")
	return cmd
}

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			active, err := app.SessionCLI.Active(context.Background())
			if errors.Is(err, apperrors.ErrNoActiveSession) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No active session. Start one with pomo start.")
				return nil
			}
			if err != nil {
				return err
			}
			console.Status(cmd.OutOrStdout(), active, time.Now())
			return nil
		},
	}
}

func newWatchCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the active session count down",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunWatch(app, cmd.OutOrStdout())
		},
	}
}

func newTodayCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's focus report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ReportCLI.Today(context.Background())
			if err != nil {
				return err
			}
			console.Today(cmd.OutOrStdout(), out)
			if out.RenderWarning != "" {
				app.Logger.Warn("chart render failed", "error", out.RenderWarning)
			}
			if out.ImagePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "REPORT_IMAGE:%s\n", out.ImagePath)
			}
			return nil
		},
	}
}

func newWeekCmd(dataDir *string) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a weekly report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ReportCLI.Week(context.Background(), start)
			if err != nil {
				return err
			}
			console.Week(cmd.OutOrStdout(), out)
			if out.RenderWarning != "" {
				app.Logger.Warn("chart render failed", "error", out.RenderWarning)
			}
			if out.ImagePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "REPORT_IMAGE:%s\n", out.ImagePath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "any day in the week to report (YYYY-MM-DD, default today)")
	return cmd
}

func newHeatmapCmd(dataDir *string) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show a monthly heatmap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ReportCLI.Heatmap(context.Background(), year, month)
			if err != nil {
				return err
			}
			console.Heatmap(cmd.OutOrStdout(), out)
			if out.RenderWarning != "" {
				app.Logger.Warn("chart render failed", "error", out.RenderWarning)
			}
			if out.ImagePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "REPORT_IMAGE:%s\n", out.ImagePath)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "heatmap year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "heatmap month 1-12 (default current)")
	return cmd
}

func newTaskCmd(dataDir *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Manage tasks"}

	task.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TaskCLI.Add(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Task created: %s\n", out.Name)
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks with their session totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			items, err := app.TaskCLI.List(context.Background())
			if err != nil {
				return err
			}
			console.Tasks(cmd.OutOrStdout(), items)
			return nil
		},
	})

	return task
}

func newConfigCmd(dataDir *string) *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			switch len(args) {
			case 0:
				entries, err := app.ConfigCLI.List(context.Background())
				if err != nil {
					return err
				}
				console.ConfigList(cmd.OutOrStdout(), entries)
			case 1:
				entry, err := app.ConfigCLI.Get(context.Background(), args[0])
				if err != nil {
					return err
				}
				console.ConfigEntry(cmd.OutOrStdout(), entry)
			case 2:
				entry, err := app.ConfigCLI.Set(context.Background(), args[0], args[1])
				if err != nil {
					return err
				}
				console.ConfigEntry(cmd.OutOrStdout(), entry)
			}
			return nil
		},
	}

	cfg.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			entries, err := app.ConfigCLI.List(context.Background())
			if err != nil {
				return err
			}
			console.ConfigList(cmd.OutOrStdout(), entries)
			return nil
		},
	})

	return cfg
}

func newExportCmd(dataDir *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" {
				return fmt.Errorf("unsupported format %q (only json)", format)
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			records, err := app.SessionCLI.Export(context.Background())
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "export format")
	return cmd
}

func newRendererCmd(dataDir *string) *cobra.Command {
	renderer := &cobra.Command{Use: "renderer", Short: "Renderer plugin operations"}

	renderer.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List renderer manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			renderers, err := app.RendererCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(renderers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no renderers configured")
				return nil
			}
			for _, r := range renderers {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t default=%t kinds=%v binary=%s\n",
					r.Name, r.Version, r.Enabled, r.Default, r.Kinds, r.Binary)
			}
			return nil
		},
	})

	renderer.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate renderer checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			results, err := app.RendererCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no renderers configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t",
					r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	return renderer
}
