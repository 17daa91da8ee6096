// Package transport
package transport

import (
	"encoding/binary"
	"fmt"
)

const (
	frameHeaderSize = 4

	// DefaultMaxFrameSize bounds the payload length a framed transport
	// accepts. Lengths above the bound, including the unsigned reading of
	// a negative value, are rejected before any allocation.
	DefaultMaxFrameSize = 16 << 20
)

// Framed wraps a transport and delimits messages with a 4-byte big-endian
// length prefix. Flush emits the queued writes as one frame; reads fetch one
// whole frame at a time and serve byte ranges out of it. Not safe for
// concurrent use.
type Framed struct {
	trans   Transport
	wbuf    []byte
	frame   []byte
	maxSize uint32
}

// NewFramed wraps trans with the default frame size limit.
func NewFramed(trans Transport) *Framed {
	return NewFramedSize(trans, DefaultMaxFrameSize)
}

// NewFramedSize wraps trans, rejecting frames larger than maxSize bytes.
func NewFramedSize(trans Transport, maxSize uint32) *Framed {
	if maxSize == 0 {
		maxSize = DefaultMaxFrameSize
	}
	return &Framed{trans: trans, maxSize: maxSize}
}

func (f *Framed) Open() error {
	return f.trans.Open()
}

func (f *Framed) Close() error {
	return f.trans.Close()
}

func (f *Framed) IsOpen() bool {
	return f.trans.IsOpen()
}

func (f *Framed) Write(p []byte) (int, error) {
	f.wbuf = append(f.wbuf, p...)
	return len(p), nil
}

// Flush prefixes the queued payload with its length and writes header and
// payload to the channel as one unit. As with Buffered, the queue is cleared
// before delivery so a failed flush cannot double-fire on retry.
func (f *Framed) Flush() error {
	if len(f.wbuf) == 0 {
		return nil
	}
	payload := f.wbuf
	f.wbuf = nil

	buf := make([]byte, frameHeaderSize+len(payload))
	binary.BigEndian.PutUint32(buf, uint32(len(payload)))
	copy(buf[frameHeaderSize:], payload)
	if _, err := f.trans.Write(buf); err != nil {
		return err
	}
	return f.trans.Flush()
}

// Read serves from the current frame, fetching the next one only when the
// frame is spent. A single call never crosses a frame boundary; ReadFull
// stitches consecutive frames together when the caller wants more.
func (f *Framed) Read(p []byte) (int, error) {
	if len(f.frame) == 0 {
		if err := f.readFrame(); err != nil {
			return 0, err
		}
	}
	n := copy(p, f.frame)
	f.frame = f.frame[n:]
	return n, nil
}

func (f *Framed) readFrame() error {
	var header [frameHeaderSize]byte
	if err := ReadFull(f.trans, header[:]); err != nil {
		return err
	}
	size := binary.BigEndian.Uint32(header[:])
	if size > f.maxSize {
		return NewError(KindUnknown,
			fmt.Sprintf("frame size %d exceeds maximum %d", size, f.maxSize))
	}
	frame := make([]byte, size)
	if err := ReadFull(f.trans, frame); err != nil {
		return err
	}
	f.frame = frame
	return nil
}
