package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Counts is the number of tasks in each bucket
type Counts struct {
	Active   int
	Finished int
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	counts Counts
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithCounts returns a copy of the bar showing c on the right
func (sb StatusBar) WithCounts(c Counts) StatusBar {
	sb.counts = c
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	hints := GetHints(sb.mode)
	separator := sb.styles.Separator.Render(" │ ")
	left := lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))

	info := sb.styles.StatusInfo.Render(
		fmt.Sprintf("%d active · %d finished", sb.counts.Active, sb.counts.Finished),
	)

	// Pad between hints and counts; drop counts if they no longer fit
	gap := sb.width - lipgloss.Width(left) - lipgloss.Width(info) - 2
	content := ansi.Truncate(left, max(sb.width-2, 0), "…")
	if gap > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Left, left, lipgloss.NewStyle().Width(gap).Render(""), info)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
