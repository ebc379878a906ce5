package editor

// Mode is the editing mode. It decides which commands are legal.
type Mode uint8

const (
	// ModeNormal is the initial mode: motions, entering insert mode, quitting.
	ModeNormal Mode = iota
	// ModeInsert allows text changes and motions.
	ModeInsert
)

// String returns the name shown in the status line.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Allows reports whether a command of the given kind may run in mode m.
func (m Mode) Allows(kind CommandKind) bool {
	switch kind {
	case CmdUp, CmdDown, CmdLeft, CmdRight,
		CmdJumpToBottom, CmdJumpToTop, CmdJumpToEnd,
		CmdLineStart, CmdLineEnd:
		return m == ModeNormal || m == ModeInsert
	case CmdInsertCharacter, CmdInsertNewline, CmdDeleteBackward, CmdExitInsert:
		return m == ModeInsert
	case CmdEnterInsert, CmdQuit:
		return m == ModeNormal
	default:
		return false
	}
}
