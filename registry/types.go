package registry

import "unsafe"

// Address identifies a tracked block: the address of its first backing byte.
// The zero Address is the null handle.
type Address uintptr

// AddressOf returns the Address of a block returned by Acquire.
// Zero-length blocks still have a distinct address. A nil slice yields 0.
func AddressOf(b []byte) Address {
	return Address(unsafe.Pointer(unsafe.SliceData(b)))
}

// record is one live tracked allocation.
type record struct {
	addr Address
	buf  []byte // as returned by the raw allocator
	size int    // as requested by the caller
	seq  uint64
}

// BlockInfo describes a live block.
type BlockInfo struct {
	Address Address
	Size    int
	Seq     uint64 // acquisition order, starting at 1
}

// Stats holds registry counters.
type Stats struct {
	Live      int   `json:"live"`       // Blocks currently tracked
	LiveBytes int64 `json:"live_bytes"` // Requested bytes currently tracked
	PeakBytes int64 `json:"peak_bytes"` // High-water mark of LiveBytes
	Acquired  int   `json:"acquired"`   // Successful acquisitions
	Released  int   `json:"released"`   // Blocks released, individually or in bulk
	Misses    int   `json:"misses"`     // Release calls that found nothing to release
	Failures  int   `json:"failures"`   // Failed acquisitions
}
