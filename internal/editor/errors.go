package editor

import "errors"

var (
	// ErrCommandNotAllowed is returned when a command is not legal in the
	// current mode. The state is left untouched.
	ErrCommandNotAllowed = errors.New("command not allowed in current mode")

	// ErrQuit is returned by Apply for the Quit command.
	ErrQuit = errors.New("quit requested")
)
