// Package registry tracks every block of manually managed memory a program
// allocates so that all of it can be released in one place.
//
// # Overview
//
// A Registry sits between the program and a raw allocator (see package
// rawmem). Every block goes out through Acquire and comes back through
// Release or, in bulk, through ReleaseAll. Because the registry records
// each block it hands out, it can always enumerate and free everything that
// is still outstanding, which makes it a safety net against leaks of memory
// the garbage collector does not manage.
//
// # Operations
//
//   - Acquire(size): allocate, zero and track a block
//   - Release(addr): free and untrack one block; a no-op for unknown addresses
//   - ReleaseAll(status): free every tracked block, then exit with status
//
// TryAcquire and Teardown expose the same machinery without the
// process-level policy: TryAcquire returns allocation failures as errors and
// Teardown frees everything without exiting.
//
// # Failure Policy
//
// Acquire treats an allocation failure as fatal for the whole process: the
// registry is torn down (every tracked block released) and the process exits
// with ExitAllocFailure. Callers that can recover use TryAcquire.
//
// # Usage Example
//
//	reg := registry.New(registry.Options{})
//
//	a := reg.Acquire(4)
//	binary.LittleEndian.PutUint32(a, 10)
//
//	reg.ReleaseBlock(a)
//	reg.ReleaseAll(0) // does not return
//
// # Process Registry
//
// Default returns a process-wide registry configured from the environment
// (see OptionsFromEnv). The package-level Acquire, Release, ReleaseBlock
// and ReleaseAll functions operate on it.
//
// # Thread Safety
//
// Registry instances are not thread-safe. Callers must not use one registry
// from more than one goroutine at a time.
package registry
