package eggshell

import "strconv"

// Level is the severity passed to the host's log slot. The numeric values are
// part of the host contract and must not be reordered.
type Level int32

const (
	// LevelInfo is for general informational messages.
	LevelInfo Level = iota
	// LevelWarning is for conditions the host should surface but that are not failures.
	LevelWarning
	// LevelError is for failures.
	LevelError
)

// String returns the level name as used in host function names.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelInfo && l <= LevelError
}
