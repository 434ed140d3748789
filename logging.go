package inputfsm

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogWarning logs errors and warnings
	LogWarning
	// LogInfo logs errors, warnings, and info
	LogInfo
	// LogDebug logs errors, warnings, info, and debug
	LogDebug
)

// LogFormatter formats log messages
type LogFormatter func(level LogLevel, format string, args ...interface{}) string

// DefaultLogFormatter provides default log formatting
func DefaultLogFormatter(level LogLevel, format string, args ...interface{}) string {
	levelStr := "INFO"
	switch level {
	case LogError:
		levelStr = "ERROR"
	case LogWarning:
		levelStr = "WARN"
	case LogInfo:
		levelStr = "INFO"
	case LogDebug:
		levelStr = "DEBUG"
	}

	return fmt.Sprintf("[%s] %s", levelStr, fmt.Sprintf(format, args...))
}

// LoggingObserver logs input controller transitions
type LoggingObserver struct {
	BaseObserver

	level     LogLevel
	prefix    string
	mutex     sync.RWMutex
	formatter LogFormatter
	writer    io.Writer
}

// NewLoggingObserver creates a new logging observer writing to w
func NewLoggingObserver(level LogLevel, prefix string, w io.Writer) *LoggingObserver {
	if w == nil {
		w = os.Stdout
	}
	return &LoggingObserver{
		level:     level,
		prefix:    prefix,
		formatter: DefaultLogFormatter,
		writer:    w,
	}
}

// NewDefaultLoggingObserver creates a logging observer with default settings (LogInfo level, stdout)
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(LogInfo, "InputControl", os.Stdout)
}

// SetFormatter sets the log formatter
func (o *LoggingObserver) SetFormatter(formatter LogFormatter) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.formatter = formatter
}

// log logs a message at the specified level
func (o *LoggingObserver) log(level LogLevel, format string, args ...interface{}) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if level <= o.level {
		prefix := ""
		if o.prefix != "" {
			prefix = fmt.Sprintf("[%s] ", o.prefix)
		}

		message := ""
		if o.formatter != nil {
			message = o.formatter(level, format, args...)
		} else {
			message = fmt.Sprintf(format, args...)
		}

		fmt.Fprintf(o.writer, "%s%s\n", prefix, message)
	}
}

// OnAction logs every dispatched action with the value delta
func (o *LoggingObserver) OnAction(action Action, from State, to State) {
	o.log(LogDebug, "Action %s: value %s -> %s", action.Type, displayValue(from.Value), displayValue(to.Value))
}

// OnValueCommit logs committed values
func (o *LoggingObserver) OnValueCommit(value *string, action Action) {
	o.log(LogInfo, "Committed value: %s", displayValue(value))
}

// OnValidationError logs validation failures
func (o *LoggingObserver) OnValidationError(err error, action Action) {
	o.log(LogError, "Validation failed: %v", err)
}

// OnDragStart logs the beginning of a drag gesture
func (o *LoggingObserver) OnDragStart(action Action) {
	o.log(LogDebug, "Drag started")
}

// OnDragEnd logs the end of a drag gesture
func (o *LoggingObserver) OnDragEnd(action Action) {
	o.log(LogDebug, "Drag ended")
}

// OnReset logs widget resets
func (o *LoggingObserver) OnReset(action Action) {
	o.log(LogInfo, "Reset")
}

// OnChangeCallback logs change-callback firings
func (o *LoggingObserver) OnChangeCallback(value string, meta ChangeMeta) {
	eventName := "none"
	if meta.Event != nil {
		eventName = meta.Event.GetName()
	}
	o.log(LogInfo, "Change callback fired: value '%s' (event: %s)", value, eventName)
}

// displayValue renders an optional value for log output
func displayValue(value *string) string {
	if value == nil {
		return "(absent)"
	}
	return fmt.Sprintf("'%s'", *value)
}
