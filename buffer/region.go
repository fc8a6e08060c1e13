package buffer

import "github.com/gpubind/cl-core/native"

// Region is a (byte offset, byte size) pair describing a sub-region of
// an existing buffer object.
type Region struct {
	Origin uint64
	Size   uint64
}

// NewRegion constructs a region.
func NewRegion(origin, size uint64) Region {
	return Region{Origin: origin, Size: size}
}

// ToRaw projects the region into the cl_buffer_region layout.
func (r Region) ToRaw() native.BufferRegion {
	return native.BufferRegion{
		Origin: uintptr(r.Origin),
		Size:   uintptr(r.Size),
	}
}

// End returns the first byte offset past the region.
func (r Region) End() uint64 {
	return r.Origin + r.Size
}
