package view

// Level is the severity of a notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Notifier displays short, non-blocking messages to the user. Refreshes
// notify from concurrent goroutines, so implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) { f(level, message) }

// Discard is a Notifier that drops every message.
var Discard Notifier = NotifierFunc(func(Level, string) {})

// notifyError reports err with the message the user should see.
func notifyError(n Notifier, err error) {
	msg := err.Error()
	if msg == "" {
		msg = "An unexpected error occurred"
	}
	n.Notify(LevelError, msg)
}
