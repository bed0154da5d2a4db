package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlert(t *testing.T) {
	a := NewAlert("Invalid input", "Please correct the highlighted fields.", []string{"Title", "Effort"}, styles.New())

	assert.Equal(t, "Invalid input", a.Title())
	assert.Nil(t, a.Init())

	view := ansi.Strip(a.View())
	assert.Contains(t, view, "Please correct the highlighted fields.")
	assert.Contains(t, view, "• Title")
	assert.Contains(t, view, "• Effort")
	assert.Contains(t, view, "[ OK ]")

	width, height := a.Size()
	assert.Equal(t, 50, width)
	assert.Equal(t, 11, height)
}

func TestAlert_DismissKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyRunes, Runes: []rune{'o'}},
	}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			a := NewAlert("t", "m", nil, styles.New())
			_, cmd := a.Update(k)
			require.NotNil(t, cmd)
			assert.IsType(t, CloseOverlayMsg{}, cmd())
		})
	}
}

func TestAlert_SwallowsOtherKeys(t *testing.T) {
	a := NewAlert("t", "m", nil, styles.New())

	for _, r := range "qjkhl" {
		_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		assert.Nil(t, cmd)
	}
}

func TestHelpOverlay(t *testing.T) {
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	hidden.SetEnabled(false)

	h := NewHelpOverlay([]KeyCategory{
		{
			Name: "Board",
			Bindings: []key.Binding{
				key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pick up task")),
				hidden,
			},
		},
	}, styles.New())

	view := ansi.Strip(h.View())
	assert.Contains(t, view, "Board:")
	assert.Contains(t, view, "pick up task")
	assert.NotContains(t, view, "hidden")
	assert.Equal(t, "Help", h.Title())

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.NotNil(t, cmd)
	assert.IsType(t, CloseOverlayMsg{}, cmd())
}

func TestDetailPanel(t *testing.T) {
	task := domain.Task{
		ID:          "t-1",
		Title:       "Design API",
		Description: strings.Repeat("word ", 200),
		Effort:      40,
		Status:      domain.StatusFinished,
	}
	d := NewDetailPanel(task, domain.DefaultEffortUnits(), styles.New())

	view := ansi.Strip(d.View())
	assert.Contains(t, view, "Design API")
	assert.Contains(t, view, "t-1")
	assert.Contains(t, view, "Finished Projects")
	assert.Contains(t, view, "2 person-months")
	assert.Contains(t, view, "Created:  -")
	assert.Contains(t, view, "(line 1/")

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, d.maxScroll(), d.scrollY)
	assert.Positive(t, d.scrollY)

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Zero(t, d.scrollY)
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Zero(t, d.scrollY)

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, CloseOverlayMsg{}, cmd())
}

func TestDetailPanel_ShortDescription(t *testing.T) {
	d := NewDetailPanel(domain.Task{ID: "t-2", Title: "x", Description: "short text"}, domain.DefaultEffortUnits(), styles.New())

	assert.Zero(t, d.maxScroll())
	assert.NotContains(t, ansi.Strip(d.View()), "j/k to scroll")
}
