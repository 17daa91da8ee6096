// Package transport
package transport

// Factory builds a decorated transport around an already-open channel.
// Connection setup code holds a factory; which decorations apply stays out
// of its hands.
type Factory func(Transport) Transport

// NewTransportFactory returns the identity factory: the channel is used bare.
func NewTransportFactory() Factory {
	return func(trans Transport) Transport {
		return trans
	}
}

// NewBufferedFactory produces buffered transports with the default read size.
func NewBufferedFactory() Factory {
	return func(trans Transport) Transport {
		return NewBuffered(trans)
	}
}

// NewBufferedFactorySize produces buffered transports with the given read size.
func NewBufferedFactorySize(readSize int) Factory {
	return func(trans Transport) Transport {
		return NewBufferedSize(trans, readSize)
	}
}

// NewFramedFactory produces framed transports with the default frame size limit.
func NewFramedFactory() Factory {
	return func(trans Transport) Transport {
		return NewFramed(trans)
	}
}

// NewFramedFactorySize produces framed transports rejecting frames above maxSize.
func NewFramedFactorySize(maxSize uint32) Factory {
	return func(trans Transport) Transport {
		return NewFramedSize(trans, maxSize)
	}
}
