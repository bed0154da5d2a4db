// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/services/navigation"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/component"
	"github.com/riordanpawley/taskboard/internal/ui/form"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
	"github.com/riordanpawley/taskboard/internal/ui/statusbar"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/riordanpawley/taskboard/internal/ui/toast"
	"go.uber.org/zap"
)

// RootID is the id of the host every panel is attached to
const RootID = "app"

// summary is a store observer that counts tasks per status for the
// status bar.
type summary struct {
	counts statusbar.Counts
}

func (s *summary) onTasks(tasks []domain.Task) {
	var c statusbar.Counts
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusActive:
			c.Active++
		case domain.StatusFinished:
			c.Finished++
		}
	}
	s.counts = c
}

// Model is the main application state
type Model struct {
	store   *store.Store
	form    *form.Form
	board   *board.Board
	root    *component.Host
	summary *summary

	nav          *navigation.Service
	overlayStack *overlay.Stack
	mode         types.Mode
	drag         *drag
	keys         keyMap

	toasts []types.Toast
	now    func() time.Time

	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *zap.Logger
}

// New wires the store, the form and both lists. The lists subscribe
// active first, then finished, then the status bar summary.
func New(cfg *config.Config, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := styles.New()
	st := store.New(logger.Named("store"))

	listOpts := func(title string) []board.ListOption {
		return []board.ListOption{board.WithTitle(title), board.WithEffortUnits(cfg.Effort)}
	}
	active := board.NewList(domain.StatusActive, st, s, logger.Named("list"), listOpts(cfg.Board.ActiveTitle)...)
	finished := board.NewList(domain.StatusFinished, st, s, logger.Named("list"), listOpts(cfg.Board.FinishedTitle)...)
	b := board.New(active, finished)

	sum := &summary{}
	st.Subscribe(sum.onTasks)

	f := form.New(st, s, logger.Named("form"))

	nav := navigation.NewService()
	if focus, err := domain.ParseStatus(cfg.Board.Focus); err == nil {
		for i, l := range b.Lists() {
			if l.Status() == focus {
				nav.FocusColumn(i)
			}
		}
	}

	root := component.NewHost(RootID, component.Vertical)
	root.Attach(b, false)
	root.Attach(f, true)

	return Model{
		store:        st,
		form:         f,
		board:        b,
		root:         root,
		summary:      sum,
		nav:          nav,
		overlayStack: overlay.NewStack(),
		mode:         types.ModeNormal,
		keys:         defaultKeyMap(),
		toasts:       []types.Toast{},
		now:          time.Now,
		styles:       s,
		config:       cfg,
		logger:       logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Store returns the task store
func (m Model) Store() *store.Store {
	return m.store
}

// Mode returns which surface receives keys
func (m Model) Mode() types.Mode {
	return m.mode
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncCursor()
	m.layout()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.overlayStack.IsEmpty() || !m.config.Board.MouseEnabled() {
			return m, nil
		}
		return m.handleMouse(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case form.InvalidInputMsg:
		alert := overlay.NewAlert(
			"Invalid input",
			"Please check the highlighted fields.",
			invalidDetails(msg.Fields),
			m.styles,
		)
		return m, m.overlayStack.Push(alert)

	case form.TaskCreatedMsg:
		m.logger.Info("task created", zap.String("task_id", msg.ID))
		m.nav.SelectTask(msg.ID, 0)
		return m, m.addToast(types.ToastSuccess, fmt.Sprintf("Added %q", msg.Title))

	case toastExpiredMsg:
		m.toasts = types.PruneToasts(m.toasts, m.now())
		return m, nil
	}

	return m, nil
}

// invalidDetails explains each failing field
func invalidDetails(fields []string) []string {
	hints := map[string]string{
		"Title":       "Title is required",
		"Description": fmt.Sprintf("Description needs at least %d characters", form.DescriptionMinLength),
		"Effort":      fmt.Sprintf("Effort must be a number from %d to %d", form.EffortMin, form.EffortMax),
	}
	details := make([]string, 0, len(fields))
	for _, f := range fields {
		if h, ok := hints[f]; ok {
			details = append(details, h)
		} else {
			details = append(details, f)
		}
	}
	return details
}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancelDrag()
		return m, tea.Quit
	}

	switch m.mode {
	case types.ModeInsert:
		return m.handleInsertMode(msg)
	case types.ModeDrag:
		return m.handleDragMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleInsertMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.focusBoard()
		return m, nil
	}
	return m, m.form.Update(msg)
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	columns := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.helpCategories(), m.styles))
	case key.Matches(msg, m.keys.Form):
		return m.focusForm()
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp(columns)
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown(columns)
	case key.Matches(msg, m.keys.Left):
		m.nav.MoveLeft(columns)
	case key.Matches(msg, m.keys.Right):
		m.nav.MoveRight(columns)
	case key.Matches(msg, m.keys.Top):
		m.nav.GotoTop(columns)
	case key.Matches(msg, m.keys.Bottom):
		m.nav.GotoBottom(columns)
	case key.Matches(msg, m.keys.Detail):
		if task := m.nav.CurrentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.NewDetailPanel(*task, m.config.Effort, m.styles))
		}
	case key.Matches(msg, m.keys.Pick):
		pos := m.nav.Position(columns)
		if !pos.Valid {
			return m, nil
		}
		m.beginDrag(pos.Column, pos.Task, false)
	}
	return m, nil
}

func (m Model) handleDragMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.hover(max(m.drag.target-1, 0))
	case key.Matches(msg, m.keys.Right):
		m.hover(min(m.drag.target+1, len(m.board.Lists())-1))
	case key.Matches(msg, m.keys.Drop):
		return m.drop()
	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag()
	}
	return m, nil
}

// focusForm hands keys to the form
func (m Model) focusForm() (Model, tea.Cmd) {
	m.mode = types.ModeInsert
	return m, m.form.Focus()
}

// focusBoard takes keys back from the form
func (m *Model) focusBoard() {
	m.form.Blur()
	m.mode = types.ModeNormal
}

// columns returns the tasks of each list in display order
func (m Model) columns() [][]domain.Task {
	lists := m.board.Lists()
	columns := make([][]domain.Task, len(lists))
	for i, l := range lists {
		columns[i] = l.Tasks()
	}
	return columns
}

// syncCursor focuses the selected card. Nothing is focused while typing.
func (m Model) syncCursor() {
	pos := m.nav.Position(m.columns())
	for i, l := range m.board.Lists() {
		if m.mode != types.ModeInsert && pos.Valid && i == pos.Column {
			l.SetCursor(pos.Task)
		} else {
			l.SetCursor(-1)
		}
	}
}

// layout sizes the board to the space left by the form, toasts and
// status bar
func (m Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	used := m.boardTop() + lipgloss.Height(m.renderToasts()) + 1
	m.board.SetHeight(max(m.height-used, 0))
}

// boardTop is the first screen row of the board
func (m Model) boardTop() int {
	return lipgloss.Height(m.form.View(m.width))
}

type toastExpiredMsg struct{}

// addToast shows a toast and schedules its removal
func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	ttl := m.config.Toast.Duration()
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now(), ttl))
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	view := toast.New(m.styles).Render(m.toasts, m.width)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, view)
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sb := statusbar.New(m.mode, m.width, m.styles).WithCounts(m.summary.counts)

	// Modal overlays replace the board until dismissed
	if current := m.overlayStack.Current(); current != nil {
		overlayView := current.View()
		if title := current.Title(); title != "" {
			overlayView = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), overlayView)
		}
		w, h := current.Size()
		overlayView = m.styles.Overlay.Width(w).Height(h).Render(overlayView)

		centered := lipgloss.Place(m.width, max(m.height-1, 0), lipgloss.Center, lipgloss.Center, overlayView)
		return lipgloss.JoinVertical(lipgloss.Left, centered, sb.Render())
	}

	parts := []string{m.root.Render(m.width)}
	if toasts := m.renderToasts(); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, sb.Render())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
