package pool

import (
	"io"
	"sync"
)

const (
	ElementBufferDefaultSize    = 1024 * 4         // 4KiB
	ElementBufferMaxThreshold   = 1024 * 1024      // 1MiB
	ContainerBufferDefaultSize  = 1024 * 64        // 64KiB
	ContainerBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is an append-only byte slice that element encoders serialize into.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow makes room for at least n more bytes without another reallocation.
//
// Small buffers grow by ElementBufferDefaultSize, larger ones by 25% of their
// capacity, and never by less than n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := ElementBufferDefaultSize
	if cap(bb.B) > 4*ElementBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers that grew past maxThreshold are dropped on Put instead of being
// retained, so one huge array does not pin its memory for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
// A maxThreshold of 0 keeps every returned buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	elementPool   = NewByteBufferPool(ElementBufferDefaultSize, ElementBufferMaxThreshold)
	containerPool = NewByteBufferPool(ContainerBufferDefaultSize, ContainerBufferMaxThreshold)
)

// GetElementBuffer retrieves a buffer sized for a single named array.
func GetElementBuffer() *ByteBuffer {
	return elementPool.Get()
}

// PutElementBuffer returns a buffer obtained from GetElementBuffer.
func PutElementBuffer(bb *ByteBuffer) {
	elementPool.Put(bb)
}

// GetContainerBuffer retrieves a buffer sized for a whole compressed container.
func GetContainerBuffer() *ByteBuffer {
	return containerPool.Get()
}

// PutContainerBuffer returns a buffer obtained from GetContainerBuffer.
func PutContainerBuffer(bb *ByteBuffer) {
	containerPool.Put(bb)
}
