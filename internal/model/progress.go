package model

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the bracketed console prefix for the level.
func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "[DEBUG]"
	case LevelWarning:
		return "[WARN]"
	case LevelError:
		return "[ERROR]"
	case LevelSuccess:
		return "[OK]"
	default:
		return "[INFO]"
	}
}

// ProgressEvent is a status update emitted while locating the installation
// or exporting songs.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ProgressFunc receives progress events. A nil ProgressFunc drops them.
type ProgressFunc func(ProgressEvent)

// Emit calls f with the event if f is not nil.
func (f ProgressFunc) Emit(level ProgressLevel, message string) {
	if f != nil {
		f(ProgressEvent{Message: message, Level: level})
	}
}
