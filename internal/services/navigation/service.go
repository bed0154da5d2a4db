// Package navigation tracks the keyboard cursor across the board lists.
package navigation

import "github.com/riordanpawley/taskboard/internal/domain"

// Position represents a computed position in the board
type Position struct {
	Column int  // index into the columns slice
	Task   int  // index within the column
	Valid  bool // whether the column holds a task at Task
}

// Cursor tracks the selected task by ID so the selection follows a task
// when it moves between lists.
type Cursor struct {
	TaskID         string
	FallbackColumn int
}

// FindPosition computes the position of the cursor's task in columns
func (c *Cursor) FindPosition(columns [][]domain.Task) Position {
	if c.TaskID != "" {
		for colIdx, col := range columns {
			for taskIdx, task := range col {
				if task.ID == c.TaskID {
					return Position{Column: colIdx, Task: taskIdx, Valid: true}
				}
			}
		}
	}

	col := c.FallbackColumn
	if col < 0 || col >= len(columns) {
		col = 0
	}
	valid := col < len(columns) && len(columns[col]) > 0
	return Position{Column: col, Task: 0, Valid: valid}
}

// SetTask updates the cursor to point to a specific task
func (c *Cursor) SetTask(taskID string, column int) {
	c.TaskID = taskID
	c.FallbackColumn = column
}

// MoveVertical moves up or down within a column, returns new task ID
func (c *Cursor) MoveVertical(columns [][]domain.Task, delta int) string {
	pos := c.FindPosition(columns)
	if !pos.Valid {
		return c.TaskID
	}

	col := columns[pos.Column]
	idx := clamp(pos.Task+delta, 0, len(col)-1)
	c.SetTask(col[idx].ID, pos.Column)
	return c.TaskID
}

// MoveHorizontal moves to an adjacent column, keeping the row where it can
func (c *Cursor) MoveHorizontal(columns [][]domain.Task, delta int) string {
	pos := c.FindPosition(columns)
	return c.JumpToColumn(columns, pos.Column+delta)
}

// JumpToColumn moves to a specific column, keeping relative row position
func (c *Cursor) JumpToColumn(columns [][]domain.Task, colIdx int) string {
	if len(columns) == 0 {
		return c.TaskID
	}
	pos := c.FindPosition(columns)
	colIdx = clamp(colIdx, 0, len(columns)-1)
	c.FallbackColumn = colIdx

	col := columns[colIdx]
	if len(col) == 0 {
		c.TaskID = ""
		return c.TaskID
	}
	c.TaskID = col[clamp(pos.Task, 0, len(col)-1)].ID
	return c.TaskID
}

// JumpToEdge moves to the first or last task in the current column
func (c *Cursor) JumpToEdge(columns [][]domain.Task, last bool) string {
	pos := c.FindPosition(columns)
	if !pos.Valid {
		return c.TaskID
	}
	col := columns[pos.Column]
	if last {
		c.TaskID = col[len(col)-1].ID
	} else {
		c.TaskID = col[0].ID
	}
	return c.TaskID
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{}
}

// Cursor returns the current cursor
func (s *Service) Cursor() *Cursor {
	return &s.cursor
}

// Position returns the computed position of the cursor in columns
func (s *Service) Position(columns [][]domain.Task) Position {
	return s.cursor.FindPosition(columns)
}

// CurrentTask returns the selected task, or nil when the column is empty
func (s *Service) CurrentTask(columns [][]domain.Task) *domain.Task {
	pos := s.cursor.FindPosition(columns)
	if !pos.Valid {
		return nil
	}
	task := columns[pos.Column][pos.Task]
	return &task
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(columns [][]domain.Task) {
	s.cursor.MoveVertical(columns, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(columns [][]domain.Task) {
	s.cursor.MoveVertical(columns, -1)
}

// MoveLeft moves cursor to left column
func (s *Service) MoveLeft(columns [][]domain.Task) {
	s.cursor.MoveHorizontal(columns, -1)
}

// MoveRight moves cursor to right column
func (s *Service) MoveRight(columns [][]domain.Task) {
	s.cursor.MoveHorizontal(columns, 1)
}

// GotoTop moves cursor to first task in column
func (s *Service) GotoTop(columns [][]domain.Task) {
	s.cursor.JumpToEdge(columns, false)
}

// GotoBottom moves cursor to last task in column
func (s *Service) GotoBottom(columns [][]domain.Task) {
	s.cursor.JumpToEdge(columns, true)
}

// SelectTask directly sets the cursor to a specific task
func (s *Service) SelectTask(taskID string, column int) {
	s.cursor.SetTask(taskID, column)
}

// FocusColumn moves the cursor to column without a task selected
func (s *Service) FocusColumn(column int) {
	s.cursor.SetTask("", column)
}
