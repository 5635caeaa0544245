//go:build unix

package rawmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates page-rounded anonymous mappings.
type Mmap struct {
	pageSize int
}

// NewMmap returns an allocator backed by anonymous private mappings.
func NewMmap() Allocator {
	return &Mmap{pageSize: unix.Getpagesize()}
}

// PageSize reports the rounding granularity of Allocate.
func (m *Mmap) PageSize() int { return m.pageSize }

// Allocate maps size bytes rounded up to the page size.
// The returned slice has len size and cap equal to the mapped length.
func (m *Mmap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	n := roundUp(size, m.pageSize)
	if n < size {
		return nil, fmt.Errorf("%w: size %d overflows page rounding", ErrInvalidSize, size)
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrMapFailed, n, err)
	}
	return data[:size], nil
}

// Free unmaps a block returned by Allocate.
// b must start where Allocate's block started; a re-sliced block fails with
// ErrUnmapFailed. Freeing a block twice is undefined: the range may already
// back a newer block.
func (m *Mmap) Free(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	if err := unix.Munmap(b[:cap(b)]); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmapFailed, err)
	}
	return nil
}

func roundUp(n, align int) int {
	return (n + align - 1) / align * align
}
