package textscan

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// dedicated type for reference to the scanned file or stream, in case we need
// to refactor this later..
type FileRef string

type Pos struct {
	File      FileRef
	Line, Col int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Message is emitted by the scanner whenever something worth reporting
// happens: malformed literals, expectation failures, I/O trouble. Errors are
// additionally returned from the operation that triggered them; the handler
// is an observation point, not a control-flow mechanism.
type Message struct {
	Severity Severity
	Pos      Pos
	Text     string
}

func (m Message) String() string {
	return fmt.Sprintf("%s: %s: %s", m.Pos, m.Severity, m.Text)
}

// MessageHandler receives every Message the scanner emits. A nil handler
// discards them.
type MessageHandler func(Message)

// LogMessages adapts scanner messages onto a structured logger.
func LogMessages(logger logrus.FieldLogger) MessageHandler {
	return func(m Message) {
		entry := logger.WithField("pos", m.Pos.String())
		switch m.Severity {
		case SeverityError:
			entry.Error(m.Text)
		case SeverityWarning:
			entry.Warning(m.Text)
		default:
			entry.Info(m.Text)
		}
	}
}

// CollectMessages appends every message to *dst; handy in tests and for
// callers that want to report all problems at the end of a scan.
func CollectMessages(dst *[]Message) MessageHandler {
	return func(m Message) {
		*dst = append(*dst, m)
	}
}

// Error is a scan error with a position attached.
type Error struct {
	Pos     Pos
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ConfigError indicates the scanner was used wrongly by the calling code:
// a lookahead request beyond the buffer capacity, a negative count, max below
// min. These panic rather than return, before any state change, since they
// are bugs in the caller rather than problems with the input.
type ConfigError struct {
	Op     string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("textscan: %s: %s", e.Op, e.Detail)
}

func configPanic(op, format string, args ...any) {
	panic(&ConfigError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// NumberFormatError is returned by the numeric readers for malformed or
// out-of-range numbers. The text is the literal as consumed from the input.
type NumberFormatError struct {
	Text  string
	Radix int
}

func (e *NumberFormatError) Error() string {
	if e.Radix != 0 && e.Radix != 10 {
		return fmt.Sprintf("For input string: %q under radix %d", e.Text, e.Radix)
	}
	return fmt.Sprintf("For input string: %q", e.Text)
}
