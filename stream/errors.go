package stream

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax     = errors.New("syntax error")
	ErrDepth      = errors.New("nesting too deep")
	ErrUnbalanced = errors.New("unbalanced events")
)

// Error is a positioned load error.  Err, when set, is one of the sentinel
// errors of this package.
type Error struct {
	Pos Pos
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Pos.Line == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ProtocolError is the panic value of a Builder fed an event sequence which
// no conforming Source produces.
type ProtocolError struct {
	Pos   Pos
	Event string
	Msg   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("stream protocol violation at %s on %s: %s", e.Pos, e.Event, e.Msg)
}
