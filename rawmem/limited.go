package rawmem

import "fmt"

// Limited enforces a byte budget over an upstream allocator.
// Usage is counted in requested bytes, not in the upstream's rounded sizes.
type Limited struct {
	upstream Allocator
	limit    int64
	inUse    int64
}

// NewLimited wraps upstream with a budget of limit bytes.
func NewLimited(upstream Allocator, limit int64) *Limited {
	return &Limited{upstream: upstream, limit: limit}
}

// Limit returns the configured budget.
func (l *Limited) Limit() int64 { return l.limit }

// InUse returns the number of bytes currently handed out.
func (l *Limited) InUse() int64 { return l.inUse }

// Allocate forwards to the upstream allocator if the budget allows it.
func (l *Limited) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if l.inUse+int64(size) > l.limit {
		return nil, fmt.Errorf("%w: need %d, %d of %d in use", ErrBudgetExceeded, size, l.inUse, l.limit)
	}
	b, err := l.upstream.Allocate(size)
	if err != nil {
		return nil, err
	}
	l.inUse += int64(len(b))
	return b, nil
}

// Free forwards to the upstream allocator and returns len(b) bytes to the
// budget. The bytes are returned even when the upstream fails: the caller
// has given the block up either way, and the error reports the leak.
func (l *Limited) Free(b []byte) error {
	err := l.upstream.Free(b)
	l.inUse -= int64(len(b))
	if l.inUse < 0 {
		l.inUse = 0
	}
	return err
}
