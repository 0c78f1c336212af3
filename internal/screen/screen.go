package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickcode/internal/ui/layout"
)

// Screen is one page of the terminal UI: the welcome splash, the quiz or
// the session summary. The router keeps them on a stack.
type Screen interface {
	// Init returns the first command, e.g. the welcome reveal tick.
	Init() tea.Cmd

	// Update handles a message. Returning a different Screen is how a
	// screen hands over to the next one.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body in the space left by the header and footer.
	View(width, height int) string

	// Title labels the header, e.g. "Challenge 3/8".
	Title() string
}

// KeyHintProvider is implemented by screens whose footer lists their own
// keys, such as the option and submit keys of the quiz.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Splash is implemented by screens that take the whole terminal. When
// Splash returns true the header and footer are not drawn.
type Splash interface {
	Splash() bool
}
