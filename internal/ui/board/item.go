package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"go.uber.org/zap"
)

// Item renders a single task card and acts as a drag source
type Item struct {
	task    domain.Task
	units   domain.EffortUnits
	styles  *styles.Styles
	logger  *zap.Logger
	focused bool
	lifted  bool

	title       string
	effort      string
	description string
}

// NewItem creates a card for task
func NewItem(task domain.Task, units domain.EffortUnits, s *styles.Styles, logger *zap.Logger) *Item {
	it := &Item{
		task:   task,
		units:  units,
		styles: s,
		logger: logger,
	}
	it.Configure()
	it.RenderContent()
	return it
}

// Configure scopes the drag handlers' logger to this task
func (it *Item) Configure() {
	it.logger = it.logger.With(zap.String("task_id", it.task.ID))
}

// RenderContent fills in title, effort and description text
func (it *Item) RenderContent() {
	it.title = it.task.Title
	it.effort = it.units.Format(it.task.Effort)
	it.description = it.task.Description
}

// Task returns the task shown by this card
func (it *Item) Task() domain.Task {
	return it.task
}

// Lifted reports whether the card is being dragged
func (it *Item) Lifted() bool {
	return it.lifted
}

// DragStart puts the task id on the payload and declares a move
func (it *Item) DragStart(dt *dnd.DataTransfer) {
	dt.SetData(dnd.MIMEPlainText, it.task.ID)
	dt.EffectAllowed = dnd.EffectMove
	it.lifted = true
	it.logger.Debug("drag started")
}

// DragEnd leaves the store alone; the drop target performs the move
func (it *Item) DragEnd(dt *dnd.DataTransfer) {
	it.lifted = false
	it.logger.Debug("finished drag", zap.Stringer("drop_effect", dt.DropEffect))
}

// View renders the card at the given outer width
func (it *Item) View(width int) string {
	cardStyle := it.styles.Card
	if it.lifted {
		cardStyle = it.styles.CardLifted
	} else if it.focused {
		cardStyle = it.styles.CardActive
	}

	// Border (2) and padding (2)
	inner := max(width-4, 1)

	cursor := ""
	if it.focused {
		cursor = "▶ "
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		it.styles.TaskTitle.Render(ansi.Truncate(cursor+it.title, inner, "…")),
		it.styles.TaskEffort.Render(ansi.Truncate(it.effort, inner, "…")),
		it.styles.TaskSummary.Render(ansi.Truncate(it.description, inner, "…")),
	)

	return cardStyle.Width(max(width-2, 1)).Render(content)
}
