package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Submit  key.Binding
	Lesson  key.Binding
	Restart key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"),
		key.WithHelp("1-4", "Pick"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Submit"),
	),
	Lesson: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("T", "Lesson"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Play again"),
	),
}

// pickIndex maps a pick key to an option index.
func pickIndex(k string) int {
	switch k {
	case "1", "a":
		return 0
	case "2", "b":
		return 1
	case "3", "c":
		return 2
	case "4", "d":
		return 3
	}
	return -1
}
