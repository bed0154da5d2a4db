package overlay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

const (
	detailWidth       = 70
	detailTextWidth   = detailWidth - 6
	detailDescription = 10 // visible description lines
)

// DetailPanel displays one task with a scrollable description
type DetailPanel struct {
	task    domain.Task
	units   domain.EffortUnits
	lines   []string
	scrollY int
	styles  *styles.Styles
}

// NewDetailPanel creates a detail panel for task
func NewDetailPanel(task domain.Task, units domain.EffortUnits, s *styles.Styles) *DetailPanel {
	wrapped := lipgloss.NewStyle().Width(detailTextWidth).Render(task.Description)
	return &DetailPanel{
		task:   task,
		units:  units,
		lines:  strings.Split(wrapped, "\n"),
		styles: s,
	}
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update scrolls the description and closes on esc, q or enter
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "enter":
			return d, closeOverlay
		case "j", "down":
			d.scrollY = min(d.scrollY+1, d.maxScroll())
		case "k", "up":
			d.scrollY = max(d.scrollY-1, 0)
		case "g":
			d.scrollY = 0
		case "G":
			d.scrollY = d.maxScroll()
		}
	}
	return d, nil
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	var b strings.Builder

	b.WriteString(d.styles.Header(d.task.Status).UnsetMarginBottom().Render(d.task.Title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(d.styles.FormLabel.Render(label + ":"))
		b.WriteString("  ")
		b.WriteString(d.styles.MenuItem.Render(value))
		b.WriteString("\n")
	}
	row("ID", d.task.ID)
	row("Status", d.task.Status.Title())
	row("Effort", d.units.Format(d.task.Effort))
	row("Created", formatTime(d.task.CreatedAt))

	b.WriteString("\n")
	end := min(d.scrollY+detailDescription, len(d.lines))
	b.WriteString(d.styles.TaskSummary.Render(strings.Join(d.lines[d.scrollY:end], "\n")))

	if d.maxScroll() > 0 {
		b.WriteString("\n\n")
		b.WriteString(d.styles.StatusHint.Render(
			fmt.Sprintf("[j/k to scroll, g/G to jump] (line %d/%d)", d.scrollY+1, len(d.lines)),
		))
	}

	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return detailWidth, min(len(d.lines), detailDescription) + 12
}

// formatTime formats a timestamp for display
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

// maxScroll returns the maximum scroll position
func (d *DetailPanel) maxScroll() int {
	return max(0, len(d.lines)-detailDescription)
}
