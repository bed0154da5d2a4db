package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
)

// keyMap holds the board and drag bindings. Form keys are handled by the
// form itself.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding
	Pick   key.Binding
	Detail key.Binding
	Form   key.Binding
	Help   key.Binding
	Quit   key.Binding

	Drop   key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous task")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next task")),
		Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left list")),
		Right:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right list")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first task")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last task")),
		Pick:   key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m/space", "pick up task")),
		Detail: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "task details")),
		Form:   key.NewBinding(key.WithKeys("tab", "i"), key.WithHelp("tab/i", "add a task")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop on list")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// helpCategories groups the bindings for the help overlay
func (k keyMap) helpCategories() []overlay.KeyCategory {
	formKeys := []struct{ keys, desc string }{
		{"tab", "next field"},
		{"shift+tab", "previous field"},
		{"enter", "submit from effort"},
		{"ctrl+s", "submit"},
		{"esc", "back to board"},
	}
	form := overlay.KeyCategory{Name: "Form"}
	for _, fk := range formKeys {
		form.Bindings = append(form.Bindings, key.NewBinding(key.WithKeys(fk.keys), key.WithHelp(fk.keys, fk.desc)))
	}

	return []overlay.KeyCategory{
		{Name: "Board", Bindings: []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom, k.Detail, k.Form, k.Help, k.Quit}},
		{Name: "Drag", Bindings: []key.Binding{k.Pick, k.Left, k.Right, k.Drop, k.Cancel}},
		form,
	}
}
