// Package transport
package transport

import (
	"errors"
	"fmt"
)

// Kind classifies a transport failure.
type Kind int32

const (
	KindUnknown Kind = iota
	KindNotOpen
	KindAlreadyOpen
	KindTimedOut
	KindEndOfFile
)

func (k Kind) String() string {
	switch k {
	case KindNotOpen:
		return "not open"
	case KindAlreadyOpen:
		return "already open"
	case KindTimedOut:
		return "timed out"
	case KindEndOfFile:
		return "end of file"
	default:
		return "unknown"
	}
}

// Error is the failure type raised by transports. Decorators pass inner
// errors through untouched, so the Kind a caller observes always originates
// at the transport that failed.
type Error struct {
	Kind    Kind
	Message string
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "transport: " + e.Kind.String()
	}
	return fmt.Sprintf("transport: %s: %s", e.Kind, e.Message)
}

// IsEndOfFile reports whether err carries the end-of-file kind.
func IsEndOfFile(err error) bool {
	return hasKind(err, KindEndOfFile)
}

// IsTimedOut reports whether err carries the timed-out kind.
func IsTimedOut(err error) bool {
	return hasKind(err, KindTimedOut)
}

// IsNotOpen reports whether err carries the not-open kind.
func IsNotOpen(err error) bool {
	return hasKind(err, KindNotOpen)
}

func hasKind(err error, kind Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}
