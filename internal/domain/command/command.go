// Package command defines the closed set of tracker commands and decodes
// them from the forms a command source can deliver: a symbol name, a single
// key, or a numeric key code. Decoding happens once at the boundary; the
// application layer only ever sees a Command.
package command

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
)

// Command is a decoded tracker command.
type Command string

const (
	RemoveFirstCondition Command = "remove-first-condition"
	Previous             Command = "previous"
	Rotate               Command = "rotate"
	Next                 Command = "next"
	Confirm              Command = "confirm"
	// SelectDown (j) moves the selection toward the end of the list and
	// SelectUp (k) toward the top. The names follow the movement.
	SelectDown         Command = "select-down"
	SelectUp           Command = "select-up"
	EditInitiative     Command = "edit-initiative"
	AddCondition       Command = "add-condition"
	ClearAllConditions Command = "clear-all-conditions"
	RankUp             Command = "rank-up"
	RankDown           Command = "rank-down"
	RefreshCurrent     Command = "refresh-current"

	// Unrecognized is returned for input that maps to no command. Dispatching
	// it is a logged no-op.
	Unrecognized Command = "unrecognized"
)

// All lists every recognized command in key-binding order.
var All = []Command{
	RemoveFirstCondition,
	Previous,
	Rotate,
	Next,
	Confirm,
	SelectDown,
	SelectUp,
	EditInitiative,
	AddCondition,
	ClearAllConditions,
	RankUp,
	RankDown,
	RefreshCurrent,
}

// keyEnter is the key name accepted for the Enter key.
const keyEnter = "Enter"

// keyCodes maps the key codes delivered by keypress events to commands.
var keyCodes = map[int]Command{
	100: RemoveFirstCondition, // d
	112: Previous,             // p
	114: Rotate,               // r
	110: Next,                 // n
	13:  Confirm,              // Enter
	106: SelectDown,           // j
	107: SelectUp,             // k
	105: EditInitiative,       // i
	97:  AddCondition,         // a
	68:  ClearAllConditions,   // D
	60:  RankUp,               // <
	62:  RankDown,             // >
	99:  RefreshCurrent,       // c
}

// IsValid returns true if the command is one of the recognized constants.
func (c Command) IsValid() bool {
	switch c {
	case RemoveFirstCondition, Previous, Rotate, Next, Confirm, SelectDown, SelectUp,
		EditInitiative, AddCondition, ClearAllConditions, RankUp, RankDown, RefreshCurrent:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return string(c)
}

// Key returns the key bound to the command, or "" for Unrecognized.
func (c Command) Key() string {
	for code, cmd := range keyCodes {
		if cmd == c {
			if code == 13 {
				return keyEnter
			}
			return string(rune(code))
		}
	}
	return ""
}

// FromKeyCode decodes a keypress key code. Unknown codes decode to
// Unrecognized.
func FromKeyCode(code int) Command {
	if c, ok := keyCodes[code]; ok {
		return c
	}
	return Unrecognized
}

// FromKey decodes a single key ("n", "<", "Enter"). Keys are case-sensitive:
// "d" removes the first condition while "D" clears all of them.
func FromKey(key string) Command {
	if key == keyEnter || key == "\r" || key == "\n" {
		return Confirm
	}
	r := []rune(key)
	if len(r) != 1 {
		return Unrecognized
	}
	return FromKeyCode(int(r[0]))
}

// Parse decodes a symbol name ("rank-up") or, failing that, a single key.
// Surrounding whitespace is ignored for both forms, except that a bare
// newline or carriage return still decodes as Enter.
// It returns Unrecognized and an error wrapping domain.ErrUnrecognizedCommand
// when neither form matches.
func Parse(s string) (Command, error) {
	trimmed := strings.TrimSpace(s)
	if c := Command(strings.ToLower(trimmed)); c.IsValid() {
		return c, nil
	}
	for _, key := range []string{trimmed, s} {
		if c := FromKey(key); c != Unrecognized {
			return c, nil
		}
	}
	return Unrecognized, fmt.Errorf("%q: %w", s, domain.ErrUnrecognizedCommand)
}
