// Package overlay provides modal dialogs drawn over the board.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component. While an overlay is open
// it receives every key press.
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

func closeOverlay() tea.Msg {
	return CloseOverlayMsg{}
}
