package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestForm(t *testing.T) (*Form, *store.Store) {
	t.Helper()
	st := store.New(zaptest.NewLogger(t))
	return New(st, styles.New(), zaptest.NewLogger(t)), st
}

func typeText(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNew(t *testing.T) {
	f, _ := newTestForm(t)
	require.NotNil(t, f)
	assert.False(t, f.Focused())
	assert.Equal(t, focusTitle, f.focusIndex)
	assert.Equal(t, "Add Project", f.heading)
}

func TestSubmit_ValidInputCreatesTaskAndClears(t *testing.T) {
	f, st := newTestForm(t)
	f.SetValues("Design API", "Write the design doc", "10")

	cmd := f.Submit()
	require.NotNil(t, cmd)

	msg, ok := cmd().(TaskCreatedMsg)
	require.True(t, ok)
	assert.Equal(t, "Design API", msg.Title)

	task, found := st.Get(msg.ID)
	require.True(t, found)
	assert.Equal(t, "Design API", task.Title)
	assert.Equal(t, "Write the design doc", task.Description)
	assert.Equal(t, 10, task.Effort)
	assert.Equal(t, domain.StatusActive, task.Status)

	title, description, effort := f.Values()
	assert.Empty(t, title)
	assert.Empty(t, description)
	assert.Empty(t, effort)
}

func TestSubmit_InvalidInputKeepsFields(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		effort      string
		fields      []string
	}{
		{"empty form", "", "", "", []string{"Title", "Description", "Effort"}},
		{"blank title", "   ", "Write the design doc", "10", []string{"Title"}},
		{"short description", "Design API", "abcd", "10", []string{"Description"}},
		{"zero effort", "Design API", "Write the design doc", "0", []string{"Effort"}},
		{"effort too large", "Design API", "Write the design doc", "1001", []string{"Effort"}},
		{"non-numeric effort", "Design API", "Write the design doc", "ten", []string{"Effort"}},
		{"fractional effort", "Design API", "Write the design doc", "1.5", []string{"Effort"}},
		{"negative effort", "Design API", "Write the design doc", "-3", []string{"Effort"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, st := newTestForm(t)
			f.SetValues(tt.title, tt.description, tt.effort)

			cmd := f.Submit()
			require.NotNil(t, cmd)
			msg, ok := cmd().(InvalidInputMsg)
			require.True(t, ok)
			assert.Equal(t, tt.fields, msg.Fields)

			assert.Equal(t, 0, st.Len())
			title, description, effort := f.Values()
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.description, description)
			assert.Equal(t, tt.effort, effort)
		})
	}
}

func TestSubmit_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		effort string
		ok     bool
	}{
		{"minimum", "1", true},
		{"maximum", "1000", true},
		{"padded", " 20 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, st := newTestForm(t)
			f.SetValues("t", "abcde", tt.effort)

			_, created := f.Submit()().(TaskCreatedMsg)
			assert.Equal(t, tt.ok, created)
			assert.Equal(t, 1, st.Len())
		})
	}
}

func TestUpdate_IgnoredWhenBlurred(t *testing.T) {
	f, _ := newTestForm(t)
	typeText(f, "hello")

	title, _, _ := f.Values()
	assert.Empty(t, title)
}

func TestUpdate_TypingAndNavigation(t *testing.T) {
	f, st := newTestForm(t)
	f.Focus()
	require.True(t, f.Focused())

	typeText(f, "Design API")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, focusDescription, f.focusIndex)

	typeText(f, "Write the design doc")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusEffort, f.focusIndex)

	typeText(f, "40")
	title, description, effort := f.Values()
	assert.Equal(t, "Design API", title)
	assert.Equal(t, "Write the design doc", description)
	assert.Equal(t, "40", effort)

	cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(TaskCreatedMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, focusTitle, f.focusIndex)
}

func TestUpdate_TabWraps(t *testing.T) {
	f, _ := newTestForm(t)
	f.Focus()

	for i := 0; i < focusCount; i++ {
		f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, focusTitle, f.focusIndex)

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusSubmit, f.focusIndex)
}

func TestUpdate_CtrlSSubmitsFromAnyField(t *testing.T) {
	f, st := newTestForm(t)
	f.Focus()
	f.SetValues("t", "abcde", "5")

	cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	_, ok := cmd().(TaskCreatedMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestBlur(t *testing.T) {
	f, _ := newTestForm(t)
	f.Focus()
	f.Blur()

	assert.False(t, f.Focused())
	for _, in := range f.inputs {
		assert.False(t, in.Focused())
	}
}

func TestView(t *testing.T) {
	f, _ := newTestForm(t)
	view := ansi.Strip(f.View(80))

	assert.Contains(t, view, "Add Project")
	assert.Contains(t, view, "Title:")
	assert.Contains(t, view, "Description:")
	assert.Contains(t, view, "Effort:")
	assert.Contains(t, view, "[ Add Project ]")
}
