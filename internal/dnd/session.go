package dnd

// Session drives one in-flight gesture, firing callbacks on the source and
// targets in the same order a browser would.
type Session struct {
	source   Draggable
	dt       *DataTransfer
	target   DropTarget
	accepted bool
}

// Begin starts a drag from src
func Begin(src Draggable) *Session {
	s := &Session{
		source: src,
		dt:     NewDataTransfer(),
	}
	src.DragStart(s.dt)
	return s
}

// Source returns the item being dragged
func (s *Session) Source() Draggable {
	return s.source
}

// Target returns the currently hovered target, or nil
func (s *Session) Target() DropTarget {
	return s.target
}

// Accepted reports whether the hovered target will take the drop
func (s *Session) Accepted() bool {
	return s.target != nil && s.accepted
}

// Data returns the payload set by the source
func (s *Session) Data() *DataTransfer {
	return s.dt
}

// Hover moves the pointer over target. Leaving the previous target fires
// DragLeave on it; a nil target means the pointer is over no target.
// Hovering the same target again re-runs DragOver.
func (s *Session) Hover(target DropTarget) {
	if s.target != nil && s.target != target {
		s.target.DragLeave(s.dt)
	}
	s.target = target
	s.accepted = false
	if target != nil {
		s.accepted = target.DragOver(s.dt)
	}
}

// Release ends the gesture, dropping on the hovered target if it accepted.
// It reports whether a drop happened.
func (s *Session) Release() bool {
	dropped := false
	if s.Accepted() {
		s.dt.DropEffect = s.dt.EffectAllowed
		s.target.Drop(s.dt)
		dropped = true
	} else if s.target != nil {
		s.target.DragLeave(s.dt)
	}
	s.target = nil
	s.accepted = false
	s.source.DragEnd(s.dt)
	return dropped
}

// Cancel abandons the gesture without dropping
func (s *Session) Cancel() {
	if s.target != nil {
		s.target.DragLeave(s.dt)
	}
	s.target = nil
	s.accepted = false
	s.dt.DropEffect = EffectNone
	s.source.DragEnd(s.dt)
}
