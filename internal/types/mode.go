// Package types contains shared types used across the application.
package types

// Mode represents which surface currently receives key presses
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeDrag
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeDrag:
		return "DRAG"
	default:
		return "UNKNOWN"
	}
}
