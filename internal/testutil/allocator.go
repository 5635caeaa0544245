// Package testutil provides fakes shared by the safealloc test suites.
package testutil

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/joshuapare/safealloc/rawmem"
)

// ErrInjected is returned by a Recording allocator when a failure was scheduled.
var ErrInjected = errors.New("testutil: injected allocation failure")

// Recording is a Go-heap allocator that remembers every block it handed out
// and every block it got back. It fills fresh blocks with 0xFF so that
// callers which forget to zero memory are caught.
//
// Example:
//
//	ra := testutil.NewRecording(t)
//	ra.FailAt(2) // second Allocate fails
type Recording struct {
	t *testing.T

	allocs int
	failAt map[int]bool

	live  map[uintptr][]byte
	frees []uintptr
}

// NewRecording returns a Recording allocator. When t is non-nil, a second
// Free of the same block fails the test.
func NewRecording(t *testing.T) *Recording {
	return &Recording{
		t:      t,
		failAt: make(map[int]bool),
		live:   make(map[uintptr][]byte),
	}
}

var _ rawmem.Allocator = (*Recording)(nil)

// FailAt schedules the n-th Allocate call (1-based, counted over the
// allocator's lifetime) to fail with ErrInjected.
func (r *Recording) FailAt(n ...int) {
	for _, i := range n {
		r.failAt[i] = true
	}
}

// Allocate returns a garbage-filled Go slice of size bytes.
func (r *Recording) Allocate(size int) ([]byte, error) {
	r.allocs++
	if r.failAt[r.allocs] {
		return nil, ErrInjected
	}
	if size <= 0 {
		return nil, rawmem.ErrInvalidSize
	}
	b := make([]byte, size)
	for i := range b {
		b[i] = 0xFF
	}
	r.live[addr(b)] = b
	return b, nil
}

// Free records the release of b.
func (r *Recording) Free(b []byte) error {
	a := addr(b)
	if _, ok := r.live[a]; !ok {
		if r.t != nil {
			r.t.Errorf("testutil: free of unknown or already freed block %#x", a)
		}
		return errors.New("testutil: double free")
	}
	delete(r.live, a)
	r.frees = append(r.frees, a)
	return nil
}

// Allocs returns the number of Allocate calls, including failed ones.
func (r *Recording) Allocs() int { return r.allocs }

// Live returns the number of blocks handed out and not yet freed.
func (r *Recording) Live() int { return len(r.live) }

// Frees returns the addresses passed to Free, in call order.
func (r *Recording) Frees() []uintptr {
	return append([]uintptr(nil), r.frees...)
}

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
