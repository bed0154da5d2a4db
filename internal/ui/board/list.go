// Package board renders the two task lists and implements their
// drag-and-drop behavior.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/ui/component"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"go.uber.org/zap"
)

// HostID returns the handle of the container holding a status's items
func HostID(status domain.Status) string {
	return status.String() + "-projects-list"
}

// List shows the tasks of one status and accepts drops of tasks from
// the other list.
type List struct {
	status domain.Status
	store  *store.Store
	styles *styles.Styles
	logger *zap.Logger
	units  domain.EffortUnits

	title     string
	assigned  []domain.Task
	items     *component.Host
	droppable bool
	cursor    int
	height    int
	offset    int // first card in view
}

// ListOption configures a List
type ListOption func(*List)

// WithTitle overrides the header text
func WithTitle(title string) ListOption {
	return func(l *List) {
		l.title = title
	}
}

// WithEffortUnits sets the labels used on cards
func WithEffortUnits(units domain.EffortUnits) ListOption {
	return func(l *List) {
		l.units = units
	}
}

// NewList creates the list for status and subscribes it to st
func NewList(status domain.Status, st *store.Store, s *styles.Styles, logger *zap.Logger, opts ...ListOption) *List {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &List{
		status: status,
		store:  st,
		styles: s,
		logger: logger.With(zap.Stringer("list", status)),
		units:  domain.DefaultEffortUnits(),
		cursor: -1,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Configure()
	l.RenderContent()
	return l
}

// Configure subscribes the list to store changes
func (l *List) Configure() {
	l.store.Subscribe(l.onTasks)
}

// RenderContent sets up the header and the item container, then shows
// whatever the store already holds.
func (l *List) RenderContent() {
	if l.title == "" {
		l.title = l.status.Title()
	}
	l.items = component.NewHost(HostID(l.status), component.Vertical)
	if l.store.Len() > 0 {
		l.onTasks(l.store.Tasks())
	}
}

// onTasks replaces the cached tasks with this list's share of the snapshot
func (l *List) onTasks(tasks []domain.Task) {
	relevant := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == l.status {
			relevant = append(relevant, t)
		}
	}
	l.assigned = relevant
	l.renderItems()
}

// renderItems clears the container and attaches one card per task in
// snapshot order.
func (l *List) renderItems() {
	l.items.Clear()
	for _, t := range l.assigned {
		l.items.Attach(NewItem(t, l.units, l.styles, l.logger), false)
	}
	l.SetCursor(l.cursor)
}

// DragOver accepts payloads carrying a task id and marks the list droppable
func (l *List) DragOver(dt *dnd.DataTransfer) bool {
	if !dt.HasType(dnd.MIMEPlainText) {
		return false
	}
	l.droppable = true
	return true
}

// Drop moves the dragged task into this list's status
func (l *List) Drop(dt *dnd.DataTransfer) {
	l.droppable = false
	id := dt.GetData(dnd.MIMEPlainText)
	l.logger.Debug("drop", zap.String("task_id", id))
	l.store.ChangeStatus(id, l.status)
}

// DragLeave removes the droppable affordance
func (l *List) DragLeave(*dnd.DataTransfer) {
	l.droppable = false
}

// Status returns the status this list shows
func (l *List) Status() domain.Status {
	return l.status
}

// Title returns the header text
func (l *List) Title() string {
	return l.title
}

// HostID returns the handle of the item container
func (l *List) HostID() string {
	return l.items.ID()
}

// Droppable reports whether a drag is hovering with an accepted payload
func (l *List) Droppable() bool {
	return l.droppable
}

// Tasks returns a copy of the cached tasks
func (l *List) Tasks() []domain.Task {
	out := make([]domain.Task, len(l.assigned))
	copy(out, l.assigned)
	return out
}

// Len returns the number of tasks shown
func (l *List) Len() int {
	return len(l.assigned)
}

// Item returns the card at index i, or nil
func (l *List) Item(i int) *Item {
	children := l.items.Children()
	if i < 0 || i >= len(children) {
		return nil
	}
	it, _ := children[i].(*Item)
	return it
}

// Cursor returns the focused index, or -1
func (l *List) Cursor() int {
	return l.cursor
}

// SetCursor focuses the card at i, clamped to the list. Negative values
// clear focus.
func (l *List) SetCursor(i int) {
	if i >= l.Len() {
		i = l.Len() - 1
	}
	if i < 0 {
		i = -1
	}
	l.cursor = i
	for idx, child := range l.items.Children() {
		if it, ok := child.(*Item); ok {
			it.focused = idx == i
		}
	}
}

// SetHeight sets the rendered height. Cards that do not fit scroll.
func (l *List) SetHeight(h int) {
	l.height = h
}

// header renders the title line with the task count
func (l *List) header(width int) string {
	text := fmt.Sprintf("─ %s (%d) ", l.title, l.Len())
	if remaining := width - lipgloss.Width(text) - 2; remaining > 0 {
		text += strings.Repeat("─", remaining)
	}
	return l.styles.Header(l.status).Render(text)
}

// innerWidth is the width available to cards inside the column border
func innerWidth(width int) int {
	return max(width-4, 1)
}

// bodyHeight is the number of rows inside the column border, or 0 when
// the list has no height set
func (l *List) bodyHeight(width int) int {
	if l.height <= 0 {
		return 0
	}
	return max(l.height-lipgloss.Height(l.header(width))-2, 0)
}

// window returns the range of cards that fits the column body, scrolled
// so the focused card stays in view. Every card is in range when the
// list has no height.
func (l *List) window(width int) (start, end int) {
	children := l.items.Children()
	n := len(children)
	body := l.bodyHeight(width)
	if body == 0 || n == 0 {
		return 0, n
	}

	inner := innerWidth(width)
	heights := make([]int, n)
	for i, child := range children {
		heights[i] = lipgloss.Height(child.View(inner))
	}

	start = min(max(l.offset, 0), n-1)
	if l.cursor >= 0 {
		start = min(start, l.cursor)
		used := 0
		for i := start; i <= l.cursor; i++ {
			used += heights[i]
		}
		for start < l.cursor && used > body {
			used -= heights[start]
			start++
		}
	}

	used := 0
	end = start
	for end < n && used+heights[end] <= body {
		used += heights[end]
		end++
	}
	// Scrolled to the bottom with room to spare: show earlier cards
	for end == n && start > 0 && used+heights[start-1] <= body {
		start--
		used += heights[start]
	}
	if end == start {
		end = start + 1
	}
	return start, end
}

// View renders the header and the bordered column of the cards in view
func (l *List) View(width int) string {
	header := l.header(width)

	start, end := l.window(width)
	l.offset = start

	inner := innerWidth(width)
	cards := make([]string, 0, end-start)
	for _, child := range l.items.Children()[start:end] {
		cards = append(cards, child.View(inner))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if l.items.Len() == 0 {
		content = l.styles.ColumnEmpty.Render("drop tasks here")
	}

	style := l.styles.Column
	if l.droppable {
		style = l.styles.ColumnDroppable
	}
	style = style.Width(max(width-2, 1))
	if body := l.bodyHeight(width); body > 0 {
		style = style.Height(body).MaxHeight(body + 2)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, style.Render(content))
}

// ItemAt returns the index of the card at row y (relative to the top of
// the list) when rendered at width, or -1. Only cards in view are hit.
func (l *List) ItemAt(y, width int) int {
	offset := lipgloss.Height(l.header(width)) + 1 // column top border
	inner := innerWidth(width)
	children := l.items.Children()
	start, end := l.window(width)
	for i := start; i < end; i++ {
		h := lipgloss.Height(children[i].View(inner))
		if y >= offset && y < offset+h {
			return i
		}
		offset += h
	}
	return -1
}

// Offset returns the index of the first card in view
func (l *List) Offset() int {
	return l.offset
}
