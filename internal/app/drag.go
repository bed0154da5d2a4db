package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"go.uber.org/zap"
)

// drag is an in-flight move of one task
type drag struct {
	session *dnd.Session
	taskID  string
	from    domain.Status
	target  int // hovered list index, -1 for none
	mouse   bool
}

// beginDrag lifts the card at index idx of list li. Keyboard drags start
// hovering their own list.
func (m *Model) beginDrag(li, idx int, mouse bool) {
	l := m.board.List(li)
	if l == nil {
		return
	}
	item := l.Item(idx)
	if item == nil {
		return
	}

	task := item.Task()
	m.drag = &drag{
		session: dnd.Begin(item),
		taskID:  task.ID,
		from:    task.Status,
		target:  -1,
		mouse:   mouse,
	}
	m.mode = types.ModeDrag
	m.logger.Debug("drag started", zap.String("task_id", task.ID), zap.Bool("mouse", mouse))

	if !mouse {
		m.hover(li)
	}
}

// hover moves the drag over list li; out of range means no list
func (m *Model) hover(li int) {
	if m.drag == nil {
		return
	}
	var target dnd.DropTarget
	if l := m.board.List(li); l != nil {
		target = l
	} else {
		li = -1
	}
	m.drag.target = li
	m.drag.session.Hover(target)
}

// drop releases the drag and reports a status change with a toast
func (m Model) drop() (Model, tea.Cmd) {
	d := m.drag
	if d == nil {
		return m, nil
	}
	m.drag = nil
	m.mode = types.ModeNormal

	if !d.session.Release() {
		return m, nil
	}

	task, ok := m.store.Get(d.taskID)
	if !ok || task.Status == d.from {
		return m, nil
	}
	title := task.Status.Title()
	if l := m.listFor(task.Status); l != nil {
		title = l.Title()
	}
	return m, m.addToast(types.ToastSuccess, fmt.Sprintf("Moved %q to %s", task.Title, title))
}

// cancelDrag abandons the drag, leaving the task where it was
func (m *Model) cancelDrag() {
	if m.drag == nil {
		return
	}
	m.drag.session.Cancel()
	m.drag = nil
	m.mode = types.ModeNormal
}

func (m Model) listFor(status domain.Status) *board.List {
	for _, l := range m.board.Lists() {
		if l.Status() == status {
			return l
		}
	}
	return nil
}

// handleMouse maps press, motion and release onto a drag session
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	y := msg.Y - m.boardTop()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.drag != nil {
			m.cancelDrag()
		}
		if y < 0 {
			if m.mode == types.ModeNormal {
				return m.focusForm()
			}
			return m, nil
		}
		if m.mode == types.ModeInsert {
			m.focusBoard()
		}

		li := m.board.ListAt(msg.X, m.width)
		l := m.board.List(li)
		if l == nil {
			return m, nil
		}
		idx := l.ItemAt(y, m.board.ColumnWidth(m.width))
		if idx < 0 {
			m.nav.FocusColumn(li)
			return m, nil
		}
		m.nav.SelectTask(l.Item(idx).Task().ID, li)
		m.beginDrag(li, idx, true)

	case tea.MouseActionMotion:
		if m.drag == nil || !m.drag.mouse {
			return m, nil
		}
		li := -1
		if y >= 0 {
			li = m.board.ListAt(msg.X, m.width)
		}
		m.hover(li)

	case tea.MouseActionRelease:
		if m.drag == nil || !m.drag.mouse {
			return m, nil
		}
		return m.drop()
	}

	return m, nil
}
