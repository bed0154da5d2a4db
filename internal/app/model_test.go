package app

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestModel(t *testing.T, cfg *config.Config) Model {
	t.Helper()
	m := New(cfg, zaptest.NewLogger(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// press sends a key. Commands are dropped: the form's cursor blink
// commands block until their timer fires.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = update(t, m, msg)
	return m
}

// submit sends a key and delivers the message its command produces
func submit(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// submitTask fills the form by typing and submits from the effort field
func submitTask(t *testing.T, m Model, title, description, effort string) Model {
	t.Helper()
	if m.Mode() != types.ModeInsert {
		m = press(t, m, keyTab)
	}
	require.Equal(t, types.ModeInsert, m.Mode())

	m = press(t, m, runes(title))
	m = press(t, m, keyTab)
	m = press(t, m, runes(description))
	m = press(t, m, keyTab)
	m = press(t, m, runes(effort))
	return submit(t, m, keyEnter)
}

func TestNew_Layout(t *testing.T) {
	m := newTestModel(t, nil)

	require.Equal(t, 2, m.root.Len())
	assert.IsType(t, &form.Form{}, m.root.Children()[0], "form is attached at the start")
	assert.IsType(t, &board.Board{}, m.root.Children()[1])

	lists := m.board.Lists()
	require.Len(t, lists, 2)
	assert.Equal(t, "active-projects-list", lists[0].HostID())
	assert.Equal(t, "finished-projects-list", lists[1].HostID())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Add Project")
	assert.Contains(t, view, "Active Projects")
	assert.Contains(t, view, "Finished Projects")
	assert.Contains(t, view, "0 active · 0 finished")
}

func TestModel_ConfiguredTitles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.ActiveTitle = "Doing"
	cfg.Effort = domain.EffortUnits{Day: "d", Month: "mo"}

	m := newTestModel(t, cfg)
	m.Store().Create("Design API", "Write the design doc", 10)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Doing")
	assert.Contains(t, view, "10 d")
}

func TestModel_CreateAndMoveWithKeyboard(t *testing.T) {
	m := newTestModel(t, nil)

	m = submitTask(t, m, "Design API", "Write the design doc", "10")
	m = submitTask(t, m, "Build", "Implement handlers", "40")

	require.Equal(t, 2, m.Store().Len())
	title, description, effort := m.form.Values()
	assert.Empty(t, title+description+effort, "form is cleared after a valid submit")

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "10 person-days")
	assert.Contains(t, view, "2 person-months")
	assert.Contains(t, view, `Added "Build"`)
	assert.Equal(t, 2, m.board.List(0).Len())

	// Back to the board, select the first task and move it
	m = press(t, m, keyEsc)
	require.Equal(t, types.ModeNormal, m.Mode())
	m = press(t, m, runes("g"))
	first := m.Store().Tasks()[0]
	require.Equal(t, 0, m.board.List(0).Cursor())

	m = press(t, m, runes("m"))
	require.Equal(t, types.ModeDrag, m.Mode())
	assert.True(t, m.board.List(0).Item(0).Lifted())
	assert.True(t, m.board.List(0).Droppable(), "a keyboard drag starts over its own list")

	m = press(t, m, runes("l"))
	assert.False(t, m.board.List(0).Droppable())
	assert.True(t, m.board.List(1).Droppable())

	m = press(t, m, keyEnter)
	assert.Equal(t, types.ModeNormal, m.Mode())

	moved, ok := m.Store().Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusFinished, moved.Status)
	assert.Equal(t, 2, m.Store().Len())
	assert.Equal(t, 1, m.board.List(0).Len())
	assert.Equal(t, 1, m.board.List(1).Len())
	assert.False(t, m.board.List(1).Droppable())

	// The cursor follows the moved task
	assert.Equal(t, 0, m.board.List(1).Cursor())
	assert.Equal(t, -1, m.board.List(0).Cursor())

	require.NotEmpty(t, m.toasts)
	assert.Equal(t, `Moved "Design API" to Finished Projects`, m.toasts[len(m.toasts)-1].Message)
	view = ansi.Strip(m.View())
	assert.Contains(t, view, `Moved "Design API"`)
	assert.Contains(t, view, "1 active · 1 finished")
}

func TestModel_StartFocus(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.Focus = "finished"

	m := newTestModel(t, cfg)
	m.Store().Create("Design API", "Write the design doc", 10)
	m.Store().ChangeStatus(m.Store().Tasks()[0].ID, domain.StatusFinished)
	m.Store().Create("Build", "Implement handlers", 40)
	m, _ = update(t, m, nil)

	assert.Equal(t, 0, m.board.List(1).Cursor())
	assert.Equal(t, -1, m.board.List(0).Cursor())
}

func TestModel_DropOnOwnListIsNoop(t *testing.T) {
	m := newTestModel(t, nil)
	id := m.Store().Create("Design API", "Write the design doc", 10)
	m = press(t, m, runes("j"))

	m = press(t, m, runes(" "))
	m, cmd := update(t, m, keyEnter)

	assert.Nil(t, cmd, "no toast without a status change")
	task, _ := m.Store().Get(id)
	assert.Equal(t, domain.StatusActive, task.Status)
}

func TestModel_CancelDrag(t *testing.T) {
	m := newTestModel(t, nil)
	id := m.Store().Create("Design API", "Write the design doc", 10)

	m = press(t, m, runes("m"))
	m = press(t, m, runes("l"))
	m = press(t, m, keyEsc)

	assert.Equal(t, types.ModeNormal, m.Mode())
	assert.False(t, m.board.List(1).Droppable())
	assert.False(t, m.board.List(0).Item(0).Lifted())
	task, _ := m.Store().Get(id)
	assert.Equal(t, domain.StatusActive, task.Status)
}

func TestModel_InvalidInputShowsAlert(t *testing.T) {
	m := newTestModel(t, nil)

	m = submitTask(t, m, "Design API", "tiny", "1001")

	assert.Equal(t, 0, m.Store().Len())
	require.False(t, m.overlayStack.IsEmpty())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Invalid input")
	assert.Contains(t, view, "Description needs at least 5 characters")
	assert.Contains(t, view, "Effort must be a number from 1 to 1000")
	assert.NotContains(t, view, "Title is required")

	// Keys go to the alert while it is open
	m, cmd := update(t, m, runes("q"))
	assert.Nil(t, cmd)

	m = submit(t, m, keyEsc)
	assert.True(t, m.overlayStack.IsEmpty())
	assert.Equal(t, types.ModeInsert, m.Mode())

	title, description, effort := m.form.Values()
	assert.Equal(t, "Design API", title)
	assert.Equal(t, "tiny", description)
	assert.Equal(t, "1001", effort)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, runes("?"))
	require.False(t, m.overlayStack.IsEmpty())
	assert.Contains(t, ansi.Strip(m.View()), "pick up task")

	m = submit(t, m, runes("?"))
	assert.True(t, m.overlayStack.IsEmpty())
}

func TestModel_DetailOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	m.Store().Create("Design API", "Write the design doc", 10)

	m = press(t, m, keyEnter)
	require.False(t, m.overlayStack.IsEmpty())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Task Details")
	assert.Contains(t, view, "Write the design doc")

	m = submit(t, m, keyEsc)
	assert.True(t, m.overlayStack.IsEmpty())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// q is text while typing, ctrl+c still quits
	m = press(t, m, keyTab)
	m = press(t, m, runes("q"))
	assert.Equal(t, types.ModeInsert, m.Mode())
	title, _, _ := m.form.Values()
	assert.Equal(t, "q", title)

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// rowOf finds the screen row of card idx in list li
func rowOf(t *testing.T, m Model, li, idx int) int {
	t.Helper()
	width := m.board.ColumnWidth(m.width)
	for y := 0; y < m.height; y++ {
		if m.board.List(li).ItemAt(y, width) == idx {
			return m.boardTop() + y
		}
	}
	t.Fatalf("card %d of list %d not found", idx, li)
	return -1
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestModel_MouseDragAndDrop(t *testing.T) {
	m := newTestModel(t, nil)
	first := m.Store().Create("Design API", "Write the design doc", 10)
	m.Store().Create("Build", "Implement handlers", 40)
	m, _ = update(t, m, nil)

	y := rowOf(t, m, 0, 0)
	m, _ = update(t, m, mouse(tea.MouseActionPress, 5, y))
	require.Equal(t, types.ModeDrag, m.Mode())
	assert.True(t, m.board.List(0).Item(0).Lifted())

	m, _ = update(t, m, mouse(tea.MouseActionMotion, 90, y))
	assert.True(t, m.board.List(1).Droppable())

	m, cmd := update(t, m, mouse(tea.MouseActionRelease, 90, y))
	assert.NotNil(t, cmd, "a move schedules a toast")
	assert.Equal(t, types.ModeNormal, m.Mode())

	task, _ := m.Store().Get(first)
	assert.Equal(t, domain.StatusFinished, task.Status)
	assert.Equal(t, 1, m.board.List(0).Len())
	assert.Equal(t, 1, m.board.List(1).Len())
}

func TestModel_LongListFitsTerminal(t *testing.T) {
	m := New(nil, zaptest.NewLogger(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	var ids []string
	for i := 1; i <= 12; i++ {
		ids = append(ids, m.Store().Create(fmt.Sprintf("Task %d", i), "Write the design doc", i))
	}
	m, _ = update(t, m, nil)

	assert.LessOrEqual(t, lipgloss.Height(m.View()), 40)
	assert.Contains(t, ansi.Strip(m.View()), "Add Project", "the form stays on screen")

	// Jump to the last card; the list scrolls to keep it in view
	m = press(t, m, runes("G"))
	view := ansi.Strip(m.View())
	assert.LessOrEqual(t, lipgloss.Height(view), 40)
	assert.Contains(t, view, "Task 12")
	active := m.board.List(0)
	require.Greater(t, active.Offset(), 0)
	picked := ids[active.Offset()]

	// A press on the first visible card lifts that card
	y := rowOf(t, m, 0, active.Offset())
	m, _ = update(t, m, mouse(tea.MouseActionPress, 5, y))
	require.Equal(t, types.ModeDrag, m.Mode())
	assert.True(t, active.Item(active.Offset()).Lifted())
	assert.False(t, active.Item(0).Lifted())
	assert.Equal(t, picked, m.drag.taskID)

	m, _ = update(t, m, mouse(tea.MouseActionMotion, 90, y))
	m, _ = update(t, m, mouse(tea.MouseActionRelease, 90, y))
	task, _ := m.Store().Get(picked)
	assert.Equal(t, domain.StatusFinished, task.Status)
	assert.Equal(t, 1, m.board.List(1).Len())
}

func TestModel_MouseReleaseOutsideLists(t *testing.T) {
	m := newTestModel(t, nil)
	id := m.Store().Create("Design API", "Write the design doc", 10)
	m, _ = update(t, m, nil)

	y := rowOf(t, m, 0, 0)
	m, _ = update(t, m, mouse(tea.MouseActionPress, 5, y))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, 90, y))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, 90, 0)) // over the form
	assert.False(t, m.board.List(1).Droppable())

	m, _ = update(t, m, mouse(tea.MouseActionRelease, 90, 0))

	task, _ := m.Store().Get(id)
	assert.Equal(t, domain.StatusActive, task.Status)
	assert.False(t, m.board.List(0).Item(0).Lifted())
}

func TestModel_MouseDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	off := false
	cfg.Board.Mouse = &off

	m := newTestModel(t, cfg)
	m.Store().Create("Design API", "Write the design doc", 10)
	m, _ = update(t, m, nil)

	m, _ = update(t, m, mouse(tea.MouseActionPress, 5, rowOf(t, m, 0, 0)))

	assert.Equal(t, types.ModeNormal, m.Mode())
}

func TestModel_ToastsExpire(t *testing.T) {
	m := newTestModel(t, nil)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m = submitTask(t, m, "Design API", "Write the design doc", "10")
	require.Len(t, m.toasts, 1)

	now = now.Add(m.config.Toast.Duration())
	m, _ = update(t, m, toastExpiredMsg{})

	assert.Empty(t, m.toasts)
}

func TestSummary_CountsPerStatus(t *testing.T) {
	s := &summary{}

	s.onTasks([]domain.Task{
		{ID: "1", Status: domain.StatusActive},
		{ID: "2", Status: domain.StatusFinished},
		{ID: "3", Status: domain.StatusActive},
	})

	assert.Equal(t, 2, s.counts.Active)
	assert.Equal(t, 1, s.counts.Finished)
}
