package rawmem

// Allocator is the capability a registry uses to obtain and return memory.
//
// Implementations:
//   - Mmap: anonymous mappings outside the Go heap
//   - Heap: Go-managed slices
//   - Limited: byte-budget wrapper around another Allocator
type Allocator interface {
	// Allocate returns a block of at least size usable bytes.
	// len(b) == size; the block starts at the first byte of its backing array.
	Allocate(size int) ([]byte, error)

	// Free returns a block previously obtained from Allocate.
	// The slice must be the one Allocate returned (its length may differ,
	// its capacity and start may not).
	Free(b []byte) error
}

// Heap allocates blocks from the Go heap.
type Heap struct{}

// NewHeap returns a Go-heap allocator.
func NewHeap() *Heap { return &Heap{} }

// Allocate returns a fresh zeroed slice of size bytes.
func (*Heap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return make([]byte, size), nil
}

// Free is a no-op; the block is reclaimed by the garbage collector once the
// caller drops its last reference.
func (*Heap) Free([]byte) error { return nil }
