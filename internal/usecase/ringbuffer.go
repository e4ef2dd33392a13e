package usecase

// RingBuffer is a circular buffer for storing message history.
// A capacity of zero means unbounded: the buffer grows and never evicts.
type RingBuffer[T any] struct {
	data []T
	head int // next write position
	size int // current number of elements
	cap  int // maximum capacity, 0 for unbounded
}

// NewRingBuffer creates a new ring buffer with the given capacity
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer[T]{
		data: make([]T, capacity),
		cap:  capacity,
	}
}

// Add appends an element, overwriting the oldest if the buffer is full
func (rb *RingBuffer[T]) Add(v T) {
	if rb.cap == 0 {
		rb.data = append(rb.data, v)
		rb.size++
		return
	}

	rb.data[rb.head] = v
	rb.head = (rb.head + 1) % rb.cap

	if rb.size < rb.cap {
		rb.size++
	}
}

// GetAll returns a copy of all elements in insertion order (oldest first)
func (rb *RingBuffer[T]) GetAll() []T {
	if rb.size == 0 {
		return nil
	}

	result := make([]T, rb.size)

	if rb.cap == 0 || rb.size < rb.cap {
		copy(result, rb.data[:rb.size])
	} else {
		// Full: head points to the oldest element
		copy(result, rb.data[rb.head:])
		copy(result[rb.cap-rb.head:], rb.data[:rb.head])
	}

	return result
}

// Len returns the current number of elements
func (rb *RingBuffer[T]) Len() int {
	return rb.size
}
