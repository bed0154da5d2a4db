package board

import (
	"github.com/riordanpawley/taskboard/internal/ui/component"
)

// Board lays the lists out side by side
type Board struct {
	lists []*List
	host  *component.Host
}

// New creates a board showing lists from left to right
func New(lists ...*List) *Board {
	b := &Board{
		lists: lists,
		host:  component.NewHost("board", component.Horizontal),
	}
	for _, l := range lists {
		b.host.Attach(l, false)
	}
	return b
}

// Lists returns the lists in display order
func (b *Board) Lists() []*List {
	return b.lists
}

// List returns the list at index i, or nil
func (b *Board) List(i int) *List {
	if i < 0 || i >= len(b.lists) {
		return nil
	}
	return b.lists[i]
}

// ColumnWidth returns the width each list is rendered at
func (b *Board) ColumnWidth(width int) int {
	if len(b.lists) == 0 {
		return 0
	}
	return width / len(b.lists)
}

// ListAt returns the index of the list under column x, or -1
func (b *Board) ListAt(x, width int) int {
	colWidth := b.ColumnWidth(width)
	if colWidth <= 0 || x < 0 {
		return -1
	}
	i := x / colWidth
	if i >= len(b.lists) {
		return -1
	}
	return i
}

// SetHeight sizes every list to h rows
func (b *Board) SetHeight(h int) {
	for _, l := range b.lists {
		l.SetHeight(h)
	}
}

// View renders the board
func (b *Board) View(width int) string {
	return b.host.Render(width)
}
