package types

import "fmt"

// Command is a player input applied to a session.
type Command uint8

const (
	CommandMoveLeft Command = iota + 1
	CommandMoveRight
	CommandRotate
	// CommandDrop advances the session by one step immediately.
	CommandDrop
	CommandPause
	CommandResume
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "left"
	case CommandMoveRight:
		return "right"
	case CommandRotate:
		return "rotate"
	case CommandDrop:
		return "drop"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	default:
		return "unknown"
	}
}

// ParseCommand parses the String form of a command.
func ParseCommand(s string) (Command, error) {
	for c := CommandMoveLeft; c <= CommandResume; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command: %s", s)
}
