// Package transport
package transport

import "io"

// Memory is an in-process transport backed by a growable byte buffer. Writes
// append to the buffer; reads consume from an independent cursor, so a
// message can be encoded and decoded through the same instance. Not safe for
// concurrent use.
type Memory struct {
	buf    []byte
	pos    int
	closed bool
}

// NewMemory returns an empty memory transport.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryBuffer returns a memory transport seeded with value, readable
// immediately.
func NewMemoryBuffer(value []byte) *Memory {
	m := &Memory{}
	m.Reset(value)
	return m
}

// Open is a no-op: a memory transport is ready as soon as it exists.
func (m *Memory) Open() error {
	if m.closed {
		return NewError(KindNotOpen, "memory transport is closed")
	}
	return nil
}

func (m *Memory) IsOpen() bool {
	return !m.closed
}

// Close discards the buffer. Further reads and writes fail with the not-open
// kind. Closing twice is a no-op.
func (m *Memory) Close() error {
	m.closed = true
	m.buf = nil
	m.pos = 0
	return nil
}

func (m *Memory) Read(p []byte) (int, error) {
	if m.closed {
		return 0, NewError(KindNotOpen, "read on closed memory transport")
	}
	if m.pos >= len(m.buf) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += n
	return n, nil
}

func (m *Memory) Write(p []byte) (int, error) {
	if m.closed {
		return 0, NewError(KindNotOpen, "write on closed memory transport")
	}
	m.buf = append(m.buf, p...)
	return len(p), nil
}

// Flush is a no-op: there is no sink below the buffer.
func (m *Memory) Flush() error {
	if m.closed {
		return NewError(KindNotOpen, "flush on closed memory transport")
	}
	return nil
}

// Bytes returns the entire backing buffer, already-read bytes included.
func (m *Memory) Bytes() []byte {
	return m.buf
}

// Reset replaces the backing buffer with a copy of value and rewinds the
// read cursor to the start.
func (m *Memory) Reset(value []byte) {
	m.buf = append([]byte(nil), value...)
	m.pos = 0
	m.closed = false
}
