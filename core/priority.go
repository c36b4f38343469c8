package core

import "strings"

// Priority represents the severity of a log record
type Priority int8

const (
	// Debugging for detailed diagnostic output
	Debugging Priority = iota
	// Message for general informational output (default)
	Message
	// Warning for conditions that deserve attention
	Warning
	// Error for failures
	Error
	// None is a verbosity sentinel only. No record ever carries it;
	// setting a store's verbosity to None suppresses all console output.
	None
)

// String returns the string representation of the priority
func (p Priority) String() string {
	switch p {
	case Debugging:
		return "DEBUG"
	case Message:
		return "MESSAGE"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case None:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the bracketed console tag. The widths are uneven on
// purpose: DEBUG and ERROR are padded so every tag is nine columns
// and timestamps line up in console output.
func (p Priority) Tag() string {
	switch p {
	case Debugging:
		return " [DEBUG] "
	case Message:
		return "[MESSAGE]"
	case Warning:
		return "[WARNING]"
	case Error:
		return " [ERROR] "
	default:
		return "[UNKNOWN]"
	}
}

// ParsePriority converts a string to a Priority. Unrecognized input
// maps to Message, the default verbosity.
func ParsePriority(s string) Priority {
	switch strings.ToUpper(s) {
	case "DEBUG", "DEBUGGING":
		return Debugging
	case "MESSAGE", "INFO":
		return Message
	case "WARN", "WARNING":
		return Warning
	case "ERROR":
		return Error
	case "NONE":
		return None
	default:
		return Message
	}
}
