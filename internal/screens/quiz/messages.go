package quiz

// intentDoneMsg is sent when a controller intent returns.
type intentDoneMsg struct {
	Intent string
	Err    error
}
