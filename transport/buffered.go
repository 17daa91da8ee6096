// Package transport
package transport

// DefaultBufferSize is the minimum number of bytes a buffered transport
// fetches from its channel per refill.
const DefaultBufferSize = 4096

// Buffered wraps a transport and batches its I/O: writes queue locally until
// Flush, and reads pull at least readSize bytes from the channel at a time,
// serving small reads out of the local window. Not safe for concurrent use.
type Buffered struct {
	trans    Transport
	wbuf     []byte
	rbuf     []byte
	readSize int
}

// NewBuffered wraps trans with the default read size.
func NewBuffered(trans Transport) *Buffered {
	return NewBufferedSize(trans, DefaultBufferSize)
}

// NewBufferedSize wraps trans, fetching at least readSize bytes per refill.
func NewBufferedSize(trans Transport, readSize int) *Buffered {
	if readSize <= 0 {
		readSize = DefaultBufferSize
	}
	return &Buffered{trans: trans, readSize: readSize}
}

func (b *Buffered) Open() error {
	return b.trans.Open()
}

func (b *Buffered) Close() error {
	return b.trans.Close()
}

func (b *Buffered) IsOpen() bool {
	return b.trans.IsOpen()
}

func (b *Buffered) Write(p []byte) (int, error) {
	b.wbuf = append(b.wbuf, p...)
	return len(p), nil
}

// Flush hands the queued writes to the channel in a single call. The queue
// is cleared before delivery is attempted: a failed flush must not leave the
// transport believing it still holds unsent data, or a caller-driven retry
// would duplicate it.
func (b *Buffered) Flush() error {
	if len(b.wbuf) == 0 {
		return nil
	}
	out := b.wbuf
	b.wbuf = nil
	if _, err := b.trans.Write(out); err != nil {
		return err
	}
	return b.trans.Flush()
}

func (b *Buffered) Read(p []byte) (int, error) {
	if len(b.rbuf) == 0 {
		size := len(p)
		if size < b.readSize {
			size = b.readSize
		}
		chunk := make([]byte, size)
		n, err := b.trans.Read(chunk)
		if n == 0 {
			return 0, err
		}
		b.rbuf = chunk[:n]
	}
	n := copy(p, b.rbuf)
	b.rbuf = b.rbuf[n:]
	return n, nil
}
