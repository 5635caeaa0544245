package registry

import (
	"container/list"
	"fmt"
	"log/slog"

	"github.com/joshuapare/safealloc/rawmem"
)

// Registry records every block handed out through it.
//
// Records are kept in acquisition order; an index by address makes Release
// O(1). Teardown walks the records oldest first.
type Registry struct {
	alloc rawmem.Allocator
	exit  func(int)
	log   *slog.Logger

	order *list.List // of *record, oldest first
	index map[Address]*list.Element

	seq   uint64
	stats Stats
}

// New returns an empty registry.
func New(opts Options) *Registry {
	opts = opts.withDefaults()
	return &Registry{
		alloc: opts.Allocator,
		exit:  opts.Exit,
		log:   opts.Logger,
		order: list.New(),
		index: make(map[Address]*list.Element),
	}
}

// Acquire returns a zeroed, tracked block of size bytes.
//
// If the memory cannot be obtained, every tracked block is released and the
// process exits with ExitAllocFailure; Acquire does not return in that case.
// (With an Exit that returns, Acquire returns nil.)
func (r *Registry) Acquire(size int) []byte {
	b, err := r.TryAcquire(size)
	if err != nil {
		r.log.Error("allocation failed, tearing down", "size", size, "live", r.order.Len(), "err", err)
		r.Teardown()
		r.exit(ExitAllocFailure)
		return nil
	}
	return b
}

// TryAcquire is Acquire without the failure policy: it returns an error
// wrapping ErrAllocFailed (or ErrBadSize) and leaves the registry unchanged.
func (r *Registry) TryAcquire(size int) ([]byte, error) {
	if size < 0 {
		r.stats.Failures++
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}

	// Zero-size blocks still need an address of their own.
	buf, err := r.alloc.Allocate(max(size, 1))
	if err != nil {
		r.stats.Failures++
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocFailed, size, err)
	}
	clear(buf[:cap(buf)])

	r.seq++
	rec := &record{addr: AddressOf(buf), buf: buf, size: size, seq: r.seq}
	if _, dup := r.index[rec.addr]; dup {
		// The allocator handed out memory that is still tracked. Freeing it
		// here would free the live block, so it is left alone.
		r.stats.Failures++
		return nil, fmt.Errorf("%w: allocator returned live address %#x", ErrAllocFailed, rec.addr)
	}
	r.index[rec.addr] = r.order.PushBack(rec)

	r.stats.Acquired++
	r.stats.LiveBytes += int64(size)
	r.stats.PeakBytes = max(r.stats.PeakBytes, r.stats.LiveBytes)

	r.log.Debug("acquire", "addr", rec.addr, "size", size, "seq", rec.seq)
	return buf[:size], nil
}

// Release frees the block at addr and stops tracking it.
// It reports whether a block was released; unknown and null addresses are
// ignored.
func (r *Registry) Release(addr Address) bool {
	el, ok := r.index[addr]
	if !ok {
		r.stats.Misses++
		r.log.Debug("release miss", "addr", addr, "live", r.order.Len())
		return false
	}
	r.drop(el)
	return true
}

// ReleaseBlock is Release(AddressOf(b)).
func (r *Registry) ReleaseBlock(b []byte) bool {
	return r.Release(AddressOf(b))
}

// ReleaseAll releases every tracked block, then exits the process with
// exitStatus. It does not return unless Options.Exit does.
func (r *Registry) ReleaseAll(exitStatus int) {
	r.Teardown()
	r.exit(exitStatus)
}

// Teardown releases every tracked block, oldest first, and returns how many
// were released. The registry is empty and usable afterwards.
func (r *Registry) Teardown() int {
	n := 0
	for el := r.order.Front(); el != nil; el = r.order.Front() {
		r.drop(el)
		n++
	}
	r.log.Info("teardown", "released", n)
	return n
}

// drop frees the record's memory and unlinks it.
func (r *Registry) drop(el *list.Element) {
	rec := r.order.Remove(el).(*record)
	delete(r.index, rec.addr)

	if err := r.alloc.Free(rec.buf); err != nil {
		r.log.Warn("free failed", "addr", rec.addr, "size", rec.size, "err", err)
	}

	r.stats.Released++
	r.stats.LiveBytes -= int64(rec.size)
	r.log.Debug("release", "addr", rec.addr, "size", rec.size, "seq", rec.seq)
}

// Len returns the number of tracked blocks.
func (r *Registry) Len() int { return r.order.Len() }

// Contains reports whether addr is tracked.
func (r *Registry) Contains(addr Address) bool {
	_, ok := r.index[addr]
	return ok
}

// Blocks returns the live blocks in acquisition order.
func (r *Registry) Blocks() []BlockInfo {
	out := make([]BlockInfo, 0, r.order.Len())
	for el := r.order.Front(); el != nil; el = el.Next() {
		rec := el.Value.(*record)
		out = append(out, BlockInfo{Address: rec.addr, Size: rec.size, Seq: rec.seq})
	}
	return out
}

// Stats returns a snapshot of the registry counters.
func (r *Registry) Stats() Stats {
	s := r.stats
	s.Live = r.order.Len()
	return s
}
