// Package transport
package transport

import (
	"fmt"
	"io"
)

// Transport is the byte stream capability shared by every transport in this
// package. Read is a single attempt and follows the io.Reader contract: it
// may return fewer bytes than requested and reports exhaustion with io.EOF.
// Use ReadFull when exactly n bytes are required.
type Transport interface {
	io.Reader
	io.Writer
	io.Closer

	Open() error
	IsOpen() bool

	// Flush pushes buffered writes down to the underlying channel. It is
	// the only point at which decorated transports guarantee delivery.
	Flush() error
}

var (
	_ Transport = (*Memory)(nil)
	_ Transport = (*Buffered)(nil)
	_ Transport = (*Framed)(nil)
	_ Transport = (*IO)(nil)
)

// ReadFull reads exactly len(buf) bytes from r, retrying short reads until
// the target is met. A stream that ends early is reported as an end-of-file
// transport error; any other failure from the channel surfaces verbatim.
// On error the contents of buf are unspecified.
func ReadFull(r io.Reader, buf []byte) error {
	var have int
	var err error
	for have < len(buf) && err == nil {
		var n int
		n, err = r.Read(buf[have:])
		have += n
		if n == 0 && err == nil {
			err = io.EOF
		}
	}
	if have >= len(buf) {
		return nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return NewError(KindEndOfFile,
			fmt.Sprintf("end of file reading from transport: got %d of %d bytes", have, len(buf)))
	}
	return err
}

// Read reads exactly size bytes from r, allocating the result. Callers that
// reuse buffers should call ReadFull directly.
func Read(r io.Reader, size int) ([]byte, error) {
	buf := make([]byte, size)
	if err := ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
