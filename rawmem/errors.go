package rawmem

import "errors"

var (
	// ErrInvalidSize indicates a request for a zero or negative number of bytes.
	ErrInvalidSize = errors.New("rawmem: size must be positive")

	// ErrBudgetExceeded indicates that a Limited allocator has no budget left for the request.
	ErrBudgetExceeded = errors.New("rawmem: budget exceeded")

	// ErrMapFailed indicates that the operating system refused a mapping.
	ErrMapFailed = errors.New("rawmem: mmap failed")

	// ErrUnmapFailed indicates that the operating system refused to release a mapping.
	ErrUnmapFailed = errors.New("rawmem: munmap failed")
)
