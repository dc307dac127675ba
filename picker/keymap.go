package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker key bindings. Digits and the a/p letters are not
// bindable; they are read from rune input.
type KeyMap struct {
	Left, Right key.Binding
	Up, Down    key.Binding
	Backspace   key.Binding

	Copy, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev section")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next section")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "increment")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "decrement")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "clear section")),

		// ctrl+c is left to the host for quitting.
		Copy:  key.NewBinding(key.WithKeys("alt+c", "ctrl+y"), key.WithHelp("alt+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Backspace, k.Copy, k.Paste},
	}
}
