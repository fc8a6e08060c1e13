package image

import (
	clcore "github.com/gpubind/cl-core"
	"github.com/gpubind/cl-core/native"
)

// Descriptor describes the geometry and structure of an image
// resource. Width, Height, Depth, and ArraySize are pixel counts;
// RowPitch and SlicePitch are byte counts. Mip levels and sample
// counts must be zero for every currently supported image type, so the
// two fields are fixed at zero and not settable.
//
// Buffer, when non-nil, references the linear buffer backing a
// one-dimensional buffer image. The reference is non-owning: ToRaw
// reads the buffer's raw handle at projection time, and the caller
// must keep the buffer object alive until the native call consuming
// the projection has returned.
type Descriptor struct {
	Type       MemObjectType
	Width      uint64
	Height     uint64
	Depth      uint64
	ArraySize  uint64
	RowPitch   uint64
	SlicePitch uint64

	numMipLevels uint32
	numSamples   uint32

	Buffer *clcore.Mem
}

// NewDescriptor constructs a descriptor. Geometry is not validated
// here; dimension limits and pitch rules are enforced by the native
// API at creation time.
func NewDescriptor(imageType MemObjectType, width, height, depth, arraySize,
	rowPitch, slicePitch uint64, buffer *clcore.Mem) Descriptor {
	return Descriptor{
		Type:       imageType,
		Width:      width,
		Height:     height,
		Depth:      depth,
		ArraySize:  arraySize,
		RowPitch:   rowPitch,
		SlicePitch: slicePitch,
		Buffer:     buffer,
	}
}

// ToRaw projects the descriptor into the fixed-layout raw struct. A
// nil Buffer projects to a null handle. The raw handle of a non-nil
// Buffer is read here, at projection time; see the lifetime contract
// on Descriptor.
//
// The raw geometry fields are size_t wide. On 32-bit targets values
// above 1<<32-1 truncate; such geometry exceeds what the native API
// can address there and is rejected by the create call, not here.
func (d Descriptor) ToRaw() native.ImageDesc {
	var buf uintptr
	if d.Buffer != nil {
		buf = d.Buffer.Raw()
	}
	return native.ImageDesc{
		Type:         uint32(d.Type),
		Width:        uintptr(d.Width),
		Height:       uintptr(d.Height),
		Depth:        uintptr(d.Depth),
		ArraySize:    uintptr(d.ArraySize),
		RowPitch:     uintptr(d.RowPitch),
		SlicePitch:   uintptr(d.SlicePitch),
		NumMipLevels: d.numMipLevels,
		NumSamples:   d.numSamples,
		Buffer:       buf,
	}
}
