package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/plof27/atomichron/internal/domain"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("76"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	projectStyle = lipgloss.NewStyle().Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// formatEntryLine renders an entry's metadata on one line: project (possibly
// empty), description (possibly empty), and tags.
func formatEntryLine(e *domain.Entry) string {
	var b strings.Builder
	b.WriteString(projectStyle.Render(e.ProjectLabel()))
	b.WriteString(": ")
	b.WriteString(e.DescriptionLabel())
	for _, t := range e.Tags {
		b.WriteString(" ")
		b.WriteString(tagStyle.Render("+" + t))
	}
	return b.String()
}

// entryArgs maps the optional positional arguments onto project and
// description; an omitted argument stays nil rather than becoming "".
func entryArgs(args []string) (project, description *string) {
	if len(args) > 0 {
		project = &args[0]
	}
	if len(args) > 1 {
		description = &args[1]
	}
	return project, description
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	} else if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func timeFormat() string {
	return appInstance.Config.Display.TimeFormat
}
