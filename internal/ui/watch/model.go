// Package watch renders the live countdown for the active session. The
// model owns no timer state: every frame derives elapsed and remaining
// from the persisted start time against the wall clock, so killing the
// view (or the terminal) loses nothing.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "pomo/internal/modules/session/dto"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/ui/console"
	"pomo/internal/ui/theme"
)

const barWidth = 30

// Port is the slice of the session use-case the watch needs.
type Port interface {
	Active(ctx context.Context) (sessiondto.ActiveOutput, error)
	Complete(ctx context.Context) (sessiondto.FinishOutput, error)
	Interrupt(ctx context.Context, reason string) (sessiondto.FinishOutput, error)
}

type activeLoadedMsg struct {
	active sessiondto.ActiveOutput
	err    error
}

type finishedMsg struct {
	out sessiondto.FinishOutput
	err error
}

type tickMsg time.Time

type keyMap struct {
	Complete  key.Binding
	Interrupt key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Complete:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Interrupt: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interrupt")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Interrupt, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Complete, k.Interrupt},
		{k.Help, k.Quit},
	}
}

type Model struct {
	port Port

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	active    sessiondto.ActiveOutput
	hasActive bool
	loading   bool
	busy      bool
	now       time.Time

	finished    sessiondto.FinishOutput
	hasFinished bool
	errText     string

	width  int
	height int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
		loading: true,
		now:     time.Now(),
	}
}

// Finished reports the terminal transition triggered from the view, so
// the caller can confirm it after the alt screen is torn down.
func (m Model) Finished() (sessiondto.FinishOutput, bool) {
	return m.finished, m.hasFinished
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadActiveCmd(), m.spinner.Tick, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case activeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoActiveSession) {
				m.errText = msg.err.Error()
			}
			m.hasActive = false
			return m, nil
		}
		m.hasActive = true
		m.active = msg.active

	case tickMsg:
		m.now = time.Time(msg)
		if m.hasFinished {
			return m, nil
		}
		return m, tick()

	case finishedMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.finished = msg.out
		m.hasFinished = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.loading || m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Complete):
			if m.hasActive && !m.busy {
				m.busy = true
				return m, tea.Batch(m.completeCmd(), m.spinner.Tick)
			}
		case key.Matches(msg, m.keys.Interrupt):
			if m.hasActive && !m.busy {
				m.busy = true
				return m, tea.Batch(m.interruptCmd(), m.spinner.Tick)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return m.center(m.spinner.View() + " Loading session…")
	}
	if !m.hasActive {
		body := theme.Muted.Render("No session running. Start one with ") +
			theme.Title.Render("pomo start")
		if m.errText != "" {
			body = theme.Bad.Render("Error: " + m.errText)
		}
		return m.center(body + "\n\n" + m.help.View(m.keys))
	}
	return m.center(m.renderSession())
}

func (m Model) renderSession() string {
	planned := time.Duration(m.active.PlannedMin) * time.Minute
	elapsed := m.now.Sub(m.active.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := planned - elapsed

	var counter, state string
	if remaining >= 0 {
		counter = formatClock(remaining)
		state = theme.Muted.Render("focus")
	} else {
		counter = "+" + formatClock(-remaining)
		state = theme.Hot.Render("overtime")
	}

	bar := console.Bar(int(elapsed.Seconds()), m.active.PlannedMin*60, barWidth)
	barStyle := theme.Good
	if remaining < 0 {
		barStyle = theme.Hot
	}

	title := theme.Title.Render("pomo")
	task := theme.Muted.Render("unattached session")
	if m.active.TaskID != "" {
		task = theme.Muted.Render("task ") + theme.Title.Render(m.active.TaskID)
	}

	lines := []string{
		title + "  " + task,
		"",
		theme.Timer.Render(counter) + "  " + state,
		"",
		barStyle.Render(bar),
		theme.Muted.Render(fmt.Sprintf("%d of %d planned minutes", int(elapsed.Minutes()), m.active.PlannedMin)),
	}
	if m.busy {
		lines = append(lines, "", m.spinner.View()+" saving…")
	}
	if m.errText != "" {
		lines = append(lines, "", theme.Bad.Render(m.errText))
	}
	lines = append(lines, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) center(body string) string {
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.port.Active(context.Background())
		return activeLoadedMsg{active: active, err: err}
	}
}

func (m Model) completeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Complete(context.Background())
		return finishedMsg{out: out, err: err}
	}
}

func (m Model) interruptCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Interrupt(context.Background(), "stopped from watch")
		return finishedMsg{out: out, err: err}
	}
}
