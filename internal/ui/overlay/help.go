package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// KeyCategory groups related bindings under a heading
type KeyCategory struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	categories []KeyCategory
	styles     *styles.Styles
}

// NewHelpOverlay creates a help overlay listing categories
func NewHelpOverlay(categories []KeyCategory, s *styles.Styles) *HelpOverlay {
	return &HelpOverlay{
		categories: categories,
		styles:     s,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?", "enter":
			return h, closeOverlay
		}
	}
	return h, nil
}

// View renders the help overlay. Disabled bindings are skipped.
func (h *HelpOverlay) View() string {
	var b strings.Builder
	for i, cat := range h.categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(h.styles.MenuItemActive.Render(cat.Name + ":"))
		b.WriteString("\n")

		for _, binding := range cat.Bindings {
			if !binding.Enabled() {
				continue
			}
			help := binding.Help()
			b.WriteString("  ")
			b.WriteString(h.styles.MenuKey.Width(12).Render(help.Key))
			b.WriteString(h.styles.MenuItem.Render(help.Desc))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	lines := 0
	for _, cat := range h.categories {
		lines += len(cat.Bindings) + 2
	}
	return 50, lines + 4
}
