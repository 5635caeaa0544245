// Package rawmem provides the raw memory allocators that back a tracking
// registry.
//
// # Overview
//
// An Allocator hands out blocks of memory and takes them back. It does no
// bookkeeping of its own: callers (normally registry.Registry) are expected
// to remember every block they were given and to return each one exactly once.
// Returning a block twice is undefined; with Mmap the range may already back
// a newer block.
//
// # Implementations
//
// Mmap: anonymous private mappings from the operating system.
//
//   - Memory lives outside the Go heap and is never collected
//   - Sizes are rounded up to whole pages
//   - Fresh pages are zero-filled by the kernel
//   - Falls back to Heap on platforms without mmap
//
// Heap: plain Go slices.
//
//   - Free is a no-op, the garbage collector reclaims the block
//   - Useful for tests and for platforms without mmap
//
// Limited: a budget decorator over any other Allocator.
//
//   - Allocate fails with ErrBudgetExceeded once the budget is spent
//   - Free returns the block's bytes to the budget
//
// # Usage Example
//
//	a := rawmem.NewLimited(rawmem.NewMmap(), 1<<20)
//	b, err := a.Allocate(4096)
//	if err != nil {
//	    return err
//	}
//	defer a.Free(b)
//
// # Thread Safety
//
// Mmap and Heap are safe for concurrent use. Limited is not.
package rawmem
