// Package component provides the capability set shared by board views and
// the host containers they are attached into.
package component

import (
	"github.com/charmbracelet/lipgloss"
)

// Component is implemented by every view variant. Configure wires event
// handlers and subscriptions; RenderContent fills in static content.
type Component interface {
	Configure()
	RenderContent()
}

// Element is anything a Host can lay out
type Element interface {
	View(width int) string
}

// Axis is the direction a Host stacks its children
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Host is an identified container with an ordered list of children
type Host struct {
	id       string
	axis     Axis
	children []Element
}

// NewHost creates an empty host
func NewHost(id string, axis Axis) *Host {
	return &Host{
		id:   id,
		axis: axis,
	}
}

// ID returns the host's handle
func (h *Host) ID() string {
	return h.id
}

// Attach inserts el at the start or the end of the host
func (h *Host) Attach(el Element, atStart bool) {
	if atStart {
		h.children = append([]Element{el}, h.children...)
		return
	}
	h.children = append(h.children, el)
}

// Clear removes every child
func (h *Host) Clear() {
	h.children = nil
}

// Len returns the number of children
func (h *Host) Len() int {
	return len(h.children)
}

// Children returns the attached elements in order
func (h *Host) Children() []Element {
	out := make([]Element, len(h.children))
	copy(out, h.children)
	return out
}

// Render lays the children out along the host's axis. Horizontal hosts
// split width evenly between children.
func (h *Host) Render(width int) string {
	if len(h.children) == 0 {
		return ""
	}

	views := make([]string, 0, len(h.children))
	switch h.axis {
	case Horizontal:
		childWidth := width / len(h.children)
		for _, child := range h.children {
			views = append(views, lipgloss.NewStyle().Width(childWidth).Render(child.View(childWidth)))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	default:
		for _, child := range h.children {
			views = append(views, child.View(width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}
}

// View lets hosts nest inside other hosts
func (h *Host) View(width int) string {
	return h.Render(width)
}
