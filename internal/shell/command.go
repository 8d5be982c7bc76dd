package shell

import "strings"

// Command is one of the recognized verbs of the catalog prompt.
type Command int

const (
	CommandInvalid Command = iota
	CommandAdd
	CommandRemove
	CommandShow
	CommandExit
)

var commandNames = map[string]Command{
	"add":    CommandAdd,
	"remove": CommandRemove,
	"show":   CommandShow,
	"exit":   CommandExit,
}

// ParseCommand trims and lower-cases line before matching it.
// Anything unrecognized is CommandInvalid.
func ParseCommand(line string) Command {
	if c, ok := commandNames[strings.ToLower(strings.TrimSpace(line))]; ok {
		return c
	}
	return CommandInvalid
}

func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandRemove:
		return "remove"
	case CommandShow:
		return "show"
	case CommandExit:
		return "exit"
	default:
		return "invalid"
	}
}
