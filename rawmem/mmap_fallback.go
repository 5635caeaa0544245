//go:build !unix

package rawmem

// NewMmap returns a Go-heap allocator when anonymous mappings are not available.
func NewMmap() Allocator {
	return NewHeap()
}
