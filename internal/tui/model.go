package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plof27/atomichron/internal/app"
	"github.com/plof27/atomichron/internal/domain"
)

// recentCount is how many log entries the screen shows below the status box
const recentCount = 5

// tickMsg is sent every second while an entry is running
type tickMsg struct{}

// refreshMsg carries freshly loaded state
type refreshMsg struct {
	current *domain.Entry
	recent  []*domain.Entry
	err     error
}

// startedMsg is sent when a new entry was started from the TUI
type startedMsg struct {
	entry *domain.Entry
	err   error
}

// stoppedMsg is sent when the running entry was stopped from the TUI
type stoppedMsg struct {
	entry *domain.Entry
	err   error
}

// clearedMsg is sent when the running entry was discarded from the TUI
type clearedMsg struct {
	entry *domain.Entry
	err   error
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func refreshCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		current, err := a.Tracker.Current(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		recent, err := a.Tracker.Entries(ctx, false)
		if err != nil {
			return refreshMsg{err: err}
		}
		if len(recent) > recentCount {
			recent = recent[:recentCount]
		}
		return refreshMsg{current: current, recent: recent}
	}
}

func startCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		// Blank entry; project and description can be filled in at stop time.
		entry, _, err := a.Tracker.Start(context.Background(), nil, nil, nil)
		return startedMsg{entry: entry, err: err}
	}
}

func stopCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		entry, _, err := a.Tracker.Stop(context.Background(), domain.StopOverrides{})
		return stoppedMsg{entry: entry, err: err}
	}
}

func clearCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		entry, err := a.Tracker.Clear(context.Background())
		return clearedMsg{entry: entry, err: err}
	}
}

// Model is the single status screen: the running entry with a live elapsed
// counter, plus the most recent log entries.
type Model struct {
	app     *app.App
	current *domain.Entry
	recent  []*domain.Entry
	keys    KeyMap
	help    help.Model
	notice  string
	err     error
	width   int
}

// NewModel creates the status screen model
func NewModel(a *app.App) *Model {
	return &Model{
		app:  a,
		keys: DefaultKeyMap,
		help: help.New(),
	}
}

// Run launches the TUI and blocks until it exits
func Run(a *app.App) error {
	p := tea.NewProgram(NewModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init loads the initial state
func (m *Model) Init() tea.Cmd {
	return refreshCmd(m.app)
}

// Update handles key events, ticks, and state refreshes
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.current = msg.current
		m.recent = msg.recent
		if m.current != nil {
			return m, tick()
		}
		return m, nil

	case tickMsg:
		if m.current == nil {
			return m, nil
		}
		// Reload so an entry stopped from another terminal disappears here.
		return m, refreshCmd(m.app)

	case startedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.entry != nil {
			m.notice = fmt.Sprintf("Started %s", msg.entry)
		}
		return m, refreshCmd(m.app)

	case stoppedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.entry != nil {
			m.notice = fmt.Sprintf("Stopped %s after %s", msg.entry, formatElapsed(msg.entry.Duration()))
		}
		return m, refreshCmd(m.app)

	case clearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.entry != nil {
			m.notice = fmt.Sprintf("Discarded %s", msg.entry)
		}
		return m, refreshCmd(m.app)

	case tea.KeyMsg:
		m.notice = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Start):
			if m.current == nil {
				return m, startCmd(m.app)
			}
		case key.Matches(msg, m.keys.Stop):
			if m.current != nil {
				return m, stopCmd(m.app)
			}
		case key.Matches(msg, m.keys.Clear):
			if m.current != nil {
				return m, clearCmd(m.app)
			}
		}
	}

	return m, nil
}

// View renders the status screen
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("atomichron"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.statusView()))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if len(m.recent) > 0 {
		b.WriteString(subtitleStyle.Render("Recent entries"))
		b.WriteString("\n")
		for _, e := range m.recent {
			b.WriteString("  " + entryLine(e))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) statusView() string {
	if m.current == nil {
		return subtitleStyle.Render("No entry running")
	}

	var b strings.Builder
	b.WriteString(runningStyle.Render("Running"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Project: %s\n", m.current.ProjectLabel()))
	b.WriteString(fmt.Sprintf("Description: %s\n", m.current.DescriptionLabel()))
	b.WriteString(fmt.Sprintf("Tags: %s\n", tagLine(m.current.Tags)))
	b.WriteString(fmt.Sprintf("Started: %s\n", m.current.StartTime.Format(m.app.Config.Display.TimeFormat)))
	b.WriteString(fmt.Sprintf("Elapsed: %s", runningStyle.Render(formatElapsed(m.current.Duration()))))
	return b.String()
}

func entryLine(e *domain.Entry) string {
	state := subtitleStyle.Render(formatElapsed(e.Duration()))
	if e.IsRunning() {
		state = runningStyle.Render("running")
	}
	return fmt.Sprintf("%s  %s", e.String(), state)
}

func tagLine(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = tagStyle.Render("+" + t)
	}
	return strings.Join(rendered, " ")
}

// formatElapsed formats a duration as "1h 02m 03s"
func formatElapsed(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
