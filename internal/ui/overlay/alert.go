package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Alert is a blocking notice that must be acknowledged before the board
// accepts input again.
type Alert struct {
	title   string
	message string
	details []string
	styles  *styles.Styles
}

// NewAlert creates an alert; details are listed below the message
func NewAlert(title, message string, details []string, s *styles.Styles) *Alert {
	return &Alert{
		title:   title,
		message: message,
		details: details,
		styles:  s,
	}
}

// Init initializes the alert
func (a *Alert) Init() tea.Cmd {
	return nil
}

// Update dismisses the alert on enter, space, esc or o and swallows
// every other key.
func (a *Alert) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ", "esc", "o":
			return a, closeOverlay
		}
	}
	return a, nil
}

// View renders the alert
func (a *Alert) View() string {
	var b strings.Builder

	b.WriteString(a.styles.MenuItem.Render(a.message))
	b.WriteString("\n")
	for _, d := range a.details {
		b.WriteString("\n")
		b.WriteString(a.styles.ToastError.UnsetBorderStyle().Render("• " + d))
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.MenuItemActive.Render("[ OK ]"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.StatusHint.Render("Enter/Esc: dismiss"))

	return b.String()
}

// Title returns the alert title
func (a *Alert) Title() string {
	return a.title
}

// Size returns the alert dimensions, widening past 50 columns for long
// lines
func (a *Alert) Size() (width, height int) {
	lines := strings.Split(a.message, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, lipgloss.Width(l))
	}
	for _, d := range a.details {
		widest = max(widest, lipgloss.Width("• "+d))
	}
	return max(50, widest+6), len(lines) + len(a.details) + 8
}
