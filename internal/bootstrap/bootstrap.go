// Package bootstrap wires the module graph. Commands call New once per
// invocation, use the handlers, and Close the app before exiting.
package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	configinadapter "pomo/internal/modules/config/adapter/in"
	configoutadapter "pomo/internal/modules/config/adapter/out"
	configservice "pomo/internal/modules/config/service"
	configusecase "pomo/internal/modules/config/usecase"
	rendererinadapter "pomo/internal/modules/renderer/adapter/in"
	rendereroutadapter "pomo/internal/modules/renderer/adapter/out"
	rendererservice "pomo/internal/modules/renderer/service"
	rendererusecase "pomo/internal/modules/renderer/usecase"
	reportinadapter "pomo/internal/modules/report/adapter/in"
	reportoutadapter "pomo/internal/modules/report/adapter/out"
	reportservice "pomo/internal/modules/report/service"
	reportusecase "pomo/internal/modules/report/usecase"
	sessioninadapter "pomo/internal/modules/session/adapter/in"
	sessionoutadapter "pomo/internal/modules/session/adapter/out"
	sessionservice "pomo/internal/modules/session/service"
	sessionusecase "pomo/internal/modules/session/usecase"
	taskinadapter "pomo/internal/modules/task/adapter/in"
	taskoutadapter "pomo/internal/modules/task/adapter/out"
	taskservice "pomo/internal/modules/task/service"
	taskusecase "pomo/internal/modules/task/usecase"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/config"
	"pomo/internal/platform/id"
	"pomo/internal/platform/sqlite"
	"pomo/internal/ui/console"
	"pomo/internal/ui/watch"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	TaskCLI     taskinadapter.CLIHandler
	ConfigCLI   configinadapter.CLIHandler
	ReportCLI   reportinadapter.CLIHandler
	RendererCLI rendererinadapter.CLIHandler

	Logger hclog.Logger

	db *sqlite.DB
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	configUC := configusecase.NewInteractor(
		configservice.NewConfigService(),
		configoutadapter.NewSQLiteConfigStore(db),
	)

	taskStore := taskoutadapter.NewSQLiteTaskStore(db)
	taskUC := taskusecase.NewInteractor(taskservice.NewTaskService(clk, ids), taskStore, taskStore)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		sessionoutadapter.NewSQLiteSessionStore(db),
		db,
		taskUC,
		configUC,
		sessionoutadapter.NewExecNotifier(logger),
	)

	rendererUC := rendererusecase.NewInteractor(rendererservice.NewRendererService(
		rendereroutadapter.NewYAMLManifestStore(cfg.ManifestsPath),
		rendereroutadapter.NewGRPCHost(),
		filepath.Join(cfg.DataDir, "charts"),
	))

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(
			clk,
			reportoutadapter.NewSessionFeedAdapter(sessionUC),
			reportoutadapter.NewConfigGoalPolicy(configUC),
		),
		reportoutadapter.NewPluginChartRenderer(rendererUC),
	)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		TaskCLI:     taskinadapter.NewCLIHandler(taskUC),
		ConfigCLI:   configinadapter.NewCLIHandler(configUC),
		ReportCLI:   reportinadapter.NewCLIHandler(reportUC),
		RendererCLI: rendererinadapter.NewCLIHandler(rendererUC),
		Logger:      logger,
		db:          db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// RunWatch drives the live countdown. The final transition, if any, is
// echoed after the alt screen is restored so it survives on the
// scrollback.
func RunWatch(app *App, out io.Writer) error {
	model := watch.New(app.SessionCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(watch.Model); ok {
		if result, done := m.Finished(); done {
			console.FinishBanner(out, result)
		}
	}
	return nil
}
