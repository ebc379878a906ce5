package editor

import "fmt"

// CommandKind identifies a command.
type CommandKind uint8

// Command kinds.
const (
	CmdUp CommandKind = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdJumpToBottom
	CmdJumpToTop
	CmdJumpToEnd
	CmdLineStart
	CmdLineEnd
	CmdInsertCharacter
	CmdInsertNewline
	CmdDeleteBackward
	CmdEnterInsert
	CmdExitInsert
	CmdQuit
)

var commandNames = [...]string{
	CmdUp:              "Up",
	CmdDown:            "Down",
	CmdLeft:            "Left",
	CmdRight:           "Right",
	CmdJumpToBottom:    "JumpToBottom",
	CmdJumpToTop:       "JumpToTop",
	CmdJumpToEnd:       "JumpToEnd",
	CmdLineStart:       "LineStart",
	CmdLineEnd:         "LineEnd",
	CmdInsertCharacter: "InsertCharacter",
	CmdInsertNewline:   "InsertNewline",
	CmdDeleteBackward:  "DeleteBackward",
	CmdEnterInsert:     "EnterInsert",
	CmdExitInsert:      "ExitInsert",
	CmdQuit:            "Quit",
}

// String returns the command kind name.
func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", k)
}

// Command is a request to change the editor state.
// Char is only used by CmdInsertCharacter.
type Command struct {
	Kind CommandKind
	Char rune
}

// Cmd returns a command of the given kind with no payload.
func Cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

// InsertCharacter returns a command that inserts r at the caret.
func InsertCharacter(r rune) Command {
	return Command{Kind: CmdInsertCharacter, Char: r}
}

// String returns a human-readable representation of the command.
func (c Command) String() string {
	if c.Kind == CmdInsertCharacter {
		return fmt.Sprintf("%s(%q)", c.Kind, c.Char)
	}
	return c.Kind.String()
}
