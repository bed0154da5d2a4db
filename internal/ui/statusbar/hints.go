package statusbar

import "github.com/riordanpawley/taskboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: lists  j/k: tasks  m: move  tab: form  ?: help  q: quit"
	case types.ModeInsert:
		return "tab: next field  enter: submit  esc: board"
	case types.ModeDrag:
		return "h/l: target  enter: drop  esc: cancel"
	default:
		return ""
	}
}
