package entity

// Command is a decoded keyboard command addressed to a tab trigger.
type Command int

const (
	CommandNone Command = iota
	CommandNext
	CommandPrev
	CommandFirst
	CommandLast
	// CommandDelete is forwarded to the trigger's delete callback untouched.
	CommandDelete
)

func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrev:
		return "prev"
	case CommandFirst:
		return "first"
	case CommandLast:
		return "last"
	case CommandDelete:
		return "delete"
	default:
		return "none"
	}
}

// Navigational reports whether c moves focus between triggers.
func (c Command) Navigational() bool {
	return c >= CommandNext && c <= CommandLast
}
