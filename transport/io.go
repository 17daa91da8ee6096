// Package transport
package transport

import (
	"errors"
	"io"
	"net"
)

// IO adapts any io.ReadWriteCloser into a leaf transport. The wrapped
// channel is assumed live, so a fresh IO transport is already open. Timeouts
// reported by net connections surface with the timed-out kind.
type IO struct {
	rwc  io.ReadWriteCloser
	open bool
}

func NewIO(rwc io.ReadWriteCloser) *IO {
	return &IO{rwc: rwc, open: true}
}

// Open fails: the wrapped channel was opened by whoever dialed it, and a
// closed IO transport cannot redial.
func (t *IO) Open() error {
	if t.open {
		return NewError(KindAlreadyOpen, "transport already open")
	}
	return NewError(KindNotOpen, "wrapped channel cannot be reopened")
}

func (t *IO) IsOpen() bool {
	return t.open
}

func (t *IO) Close() error {
	if !t.open {
		return nil
	}
	t.open = false
	return t.rwc.Close()
}

func (t *IO) Read(p []byte) (int, error) {
	if !t.open {
		return 0, NewError(KindNotOpen, "read on closed transport")
	}
	n, err := t.rwc.Read(p)
	return n, wrapTimeout(err)
}

func (t *IO) Write(p []byte) (int, error) {
	if !t.open {
		return 0, NewError(KindNotOpen, "write on closed transport")
	}
	n, err := t.rwc.Write(p)
	return n, wrapTimeout(err)
}

// Flush is a no-op: writes go straight to the channel.
func (t *IO) Flush() error {
	if !t.open {
		return NewError(KindNotOpen, "flush on closed transport")
	}
	return nil
}

func wrapTimeout(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return NewError(KindTimedOut, err.Error())
	}
	return err
}
