// Package form provides the always-visible panel used to add tasks.
package form

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/riordanpawley/taskboard/internal/validate"
	"go.uber.org/zap"
)

// Field limits applied before a task reaches the store
const (
	DescriptionMinLength = 5
	EffortMin            = 1
	EffortMax            = 1000
)

// TaskCreatedMsg is emitted after a task was added to the store
type TaskCreatedMsg struct {
	ID    string
	Title string
}

// InvalidInputMsg is emitted when submitted values fail validation.
// Fields lists the labels of the failing fields in form order.
type InvalidInputMsg struct {
	Fields []string
}

const (
	focusTitle = iota
	focusDescription
	focusEffort
	focusSubmit
	focusCount
)

var labels = [...]string{"Title", "Description", "Effort"}

// Form gathers title, description and effort and creates tasks from them
type Form struct {
	store  *store.Store
	styles *styles.Styles
	logger *zap.Logger

	inputs     [3]textinput.Model
	focusIndex int
	active     bool
	heading    string
}

// New creates a form that adds tasks to st
func New(st *store.Store, s *styles.Styles, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Form{
		store:  st,
		styles: s,
		logger: logger,
	}
	f.Configure()
	f.RenderContent()
	return f
}

// Configure sets up the three text inputs
func (f *Form) Configure() {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 200

	description := textinput.New()
	description.Placeholder = "At least 5 characters..."
	description.CharLimit = 2000

	effort := textinput.New()
	effort.Placeholder = "Person-days, 1-1000"
	effort.CharLimit = 4

	f.inputs = [3]textinput.Model{title, description, effort}
}

// RenderContent sets the panel heading
func (f *Form) RenderContent() {
	f.heading = "Add Project"
}

// Focus gives the form keyboard focus, starting at the title field
func (f *Form) Focus() tea.Cmd {
	f.active = true
	f.focusIndex = focusTitle
	return f.syncFocus()
}

// Blur releases keyboard focus
func (f *Form) Blur() {
	f.active = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Focused reports whether the form has keyboard focus
func (f *Form) Focused() bool {
	return f.active
}

// Values returns the raw field contents
func (f *Form) Values() (title, description, effort string) {
	return f.inputs[focusTitle].Value(), f.inputs[focusDescription].Value(), f.inputs[focusEffort].Value()
}

// SetValues replaces the raw field contents
func (f *Form) SetValues(title, description, effort string) {
	f.inputs[focusTitle].SetValue(title)
	f.inputs[focusDescription].SetValue(description)
	f.inputs[focusEffort].SetValue(effort)
}

// Update handles keys while the form is focused
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if !f.active {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.focusIndex = (f.focusIndex + 1) % focusCount
			return f.syncFocus()

		case "shift+tab", "up":
			f.focusIndex = (f.focusIndex - 1 + focusCount) % focusCount
			return f.syncFocus()

		case "ctrl+s":
			return f.Submit()

		case "enter":
			if f.focusIndex >= focusEffort {
				return f.Submit()
			}
			f.focusIndex++
			return f.syncFocus()
		}
	}

	if f.focusIndex < focusSubmit {
		var cmd tea.Cmd
		f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
		return cmd
	}
	return nil
}

// Submit validates the fields. On success it creates the task and clears
// the form; on failure the fields are left as typed.
func (f *Form) Submit() tea.Cmd {
	title, description, effort, invalid := f.gatherInput()
	if len(invalid) > 0 {
		f.logger.Debug("invalid input", zap.Strings("fields", invalid))
		return func() tea.Msg { return InvalidInputMsg{Fields: invalid} }
	}

	id := f.store.Create(title, description, effort)
	f.clearInputs()

	return func() tea.Msg { return TaskCreatedMsg{ID: id, Title: title} }
}

// gatherInput validates the three fields and returns the labels of any
// that fail.
func (f *Form) gatherInput() (title, description string, effort int, invalid []string) {
	rawTitle, rawDescription, rawEffort := f.Values()
	title = strings.TrimSpace(rawTitle)
	description = strings.TrimSpace(rawDescription)

	titleValidatable := validate.Validatable{
		Value:    title,
		Required: true,
	}
	descriptionValidatable := validate.Validatable{
		Value:     description,
		Required:  true,
		MinLength: validate.Int(DescriptionMinLength),
	}

	// A non-integer effort can never satisfy the numeric range
	effort, err := strconv.Atoi(strings.TrimSpace(rawEffort))
	effortValidatable := validate.Validatable{
		Value:    effort,
		Required: true,
		Min:      validate.Float(EffortMin),
		Max:      validate.Float(EffortMax),
	}

	if !validate.Validate(titleValidatable) {
		invalid = append(invalid, labels[focusTitle])
	}
	if !validate.Validate(descriptionValidatable) {
		invalid = append(invalid, labels[focusDescription])
	}
	if err != nil || !validate.Validate(effortValidatable) {
		invalid = append(invalid, labels[focusEffort])
	}
	return title, description, effort, invalid
}

func (f *Form) clearInputs() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.focusIndex = focusTitle
	if f.active {
		f.syncFocus()
	}
}

// syncFocus focuses the input under focusIndex and blurs the rest
func (f *Form) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focusIndex && f.active {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// View renders the panel at the given outer width
func (f *Form) View(width int) string {
	panel := f.styles.Form
	if f.active {
		panel = f.styles.FormFocused
	}

	// panel border + padding, label, gap
	inputWidth := max(width-4-f.styles.FormLabel.GetWidth()-4, 10)

	var b strings.Builder
	b.WriteString(f.styles.OverlayTitle.UnsetMarginBottom().Render(f.heading))
	for i := range f.inputs {
		label := f.styles.FormLabel
		if f.active && f.focusIndex == i {
			label = f.styles.FormLabelHot
		}
		f.inputs[i].Width = inputWidth
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(labels[i]+":"), "  ", f.inputs[i].View()))
	}

	submit := f.styles.MenuItem
	if f.active && f.focusIndex == focusSubmit {
		submit = f.styles.MenuItemActive
	}
	b.WriteString("\n")
	b.WriteString(submit.Render("[ Add Project ]"))

	return panel.Width(max(width-2, 1)).Render(b.String())
}
