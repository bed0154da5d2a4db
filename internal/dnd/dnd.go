// Package dnd models a drag-and-drop gesture: a payload carried from a drag
// source to a drop target, plus the callbacks each side receives.
package dnd

import "slices"

// MIMEPlainText is the payload type used to carry task ids
const MIMEPlainText = "text/plain"

// Effect declares what a drop does with the dragged item
type Effect int

const (
	EffectNone Effect = iota
	EffectCopy
	EffectMove
)

func (e Effect) String() string {
	switch e {
	case EffectCopy:
		return "copy"
	case EffectMove:
		return "move"
	default:
		return "none"
	}
}

// DataTransfer carries the drag payload between source and target
type DataTransfer struct {
	types         []string
	data          map[string]string
	EffectAllowed Effect
	DropEffect    Effect
}

// NewDataTransfer creates an empty payload
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{
		data: make(map[string]string),
	}
}

// SetData stores value under format, keeping first-set order in Types
func (dt *DataTransfer) SetData(format, value string) {
	if _, ok := dt.data[format]; !ok {
		dt.types = append(dt.types, format)
	}
	dt.data[format] = value
}

// GetData returns the value stored under format, or "" if absent
func (dt *DataTransfer) GetData(format string) string {
	return dt.data[format]
}

// Types returns the formats in the order they were first set
func (dt *DataTransfer) Types() []string {
	return slices.Clone(dt.types)
}

// HasType reports whether the first declared format equals format
func (dt *DataTransfer) HasType(format string) bool {
	return len(dt.types) > 0 && dt.types[0] == format
}

// Draggable is implemented by components that can be picked up
type Draggable interface {
	DragStart(dt *DataTransfer)
	DragEnd(dt *DataTransfer)
}

// DropTarget is implemented by components that accept drops.
// DragOver returns true to accept the drop.
type DropTarget interface {
	DragOver(dt *DataTransfer) bool
	Drop(dt *DataTransfer)
	DragLeave(dt *DataTransfer)
}
