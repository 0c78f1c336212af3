package session

import "errors"

var (
	// ErrNoChallenges means the seed pool is empty or lacks the fallback
	// challenge. It is a configuration defect, not a runtime failure.
	ErrNoChallenges = errors.New("session: no challenges available")

	// ErrBusy is returned for intents that arrive while a request is in flight.
	ErrBusy = errors.New("session: request in flight")

	// ErrInvalidPhase is returned for intents not valid in the current phase.
	ErrInvalidPhase = errors.New("session: intent not valid in current phase")

	// ErrNoSelection is returned by Submit when no option is selected.
	ErrNoSelection = errors.New("session: no option selected")

	// ErrUnknownOption is returned by SelectOption for text that is not one
	// of the current challenge's options.
	ErrUnknownOption = errors.New("session: unknown option")
)
