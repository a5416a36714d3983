// Package ring implements a fixed-capacity sequence that evicts its oldest
// entry on overflow. The simulation uses it for price history, portfolio
// history, the news tape, and momentum windows.
package ring

// Buffer is a bounded FIFO. The zero value is not usable; call New.
type Buffer[T any] struct {
	buf  []T
	head int // index of the oldest element
	size int
}

// New creates a Buffer holding at most capacity elements. Panics if
// capacity <= 0.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest element if the buffer is full.
func (b *Buffer[T]) Push(v T) {
	if b.size < len(b.buf) {
		b.buf[(b.head+b.size)%len(b.buf)] = v
		b.size++
		return
	}
	b.buf[b.head] = v
	b.head = (b.head + 1) % len(b.buf)
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// At returns the i-th element, 0 being the oldest. Panics when out of range.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.size {
		panic("ring: index out of range")
	}
	return b.buf[(b.head+i)%len(b.buf)]
}

// Set replaces the i-th element, 0 being the oldest. Panics when out of
// range.
func (b *Buffer[T]) Set(i int, v T) {
	if i < 0 || i >= b.size {
		panic("ring: index out of range")
	}
	b.buf[(b.head+i)%len(b.buf)] = v
}

// Last returns up to n most-recent elements, oldest first.
func (b *Buffer[T]) Last(n int) []T {
	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = b.At(b.size - n + i)
	}
	return out
}

// Values returns all elements oldest first.
func (b *Buffer[T]) Values() []T {
	return b.Last(b.size)
}
