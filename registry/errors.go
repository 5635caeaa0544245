package registry

import "errors"

var (
	// ErrAllocFailed indicates that the raw allocator could not satisfy a request.
	ErrAllocFailed = errors.New("registry: allocation failed")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("registry: size must not be negative")
)

// ExitAllocFailure is the process exit status used when Acquire cannot
// allocate. It matches what a shell reports for exit(-1).
const ExitAllocFailure = 255
