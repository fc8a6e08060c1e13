package image

import (
	"fmt"

	"github.com/gpubind/cl-core/errors"
	"github.com/gpubind/cl-core/native"
)

// MemObjectType identifies the kind of memory object a descriptor
// describes. Values are the cl_mem_object_type codes.
type MemObjectType uint32

const (
	MemObjectBuffer        MemObjectType = native.MemObjectBuffer
	MemObjectImage2D       MemObjectType = native.MemObjectImage2D
	MemObjectImage3D       MemObjectType = native.MemObjectImage3D
	MemObjectImage2DArray  MemObjectType = native.MemObjectImage2DArray
	MemObjectImage1D       MemObjectType = native.MemObjectImage1D
	MemObjectImage1DArray  MemObjectType = native.MemObjectImage1DArray
	MemObjectImage1DBuffer MemObjectType = native.MemObjectImage1DBuffer
)

var memObjectTypeNames = map[MemObjectType]string{
	MemObjectBuffer:        "Buffer",
	MemObjectImage2D:       "Image2D",
	MemObjectImage3D:       "Image3D",
	MemObjectImage2DArray:  "Image2DArray",
	MemObjectImage1D:       "Image1D",
	MemObjectImage1DArray:  "Image1DArray",
	MemObjectImage1DBuffer: "Image1DBuffer",
}

func (t MemObjectType) String() string {
	if name, ok := memObjectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MemObjectType(%#x)", uint32(t))
}

// MemObjectTypeFromRaw converts a raw cl_mem_object_type code,
// rejecting codes that map to no known enumerant.
func MemObjectTypeFromRaw(raw uint32) (MemObjectType, error) {
	t := MemObjectType(raw)
	if _, ok := memObjectTypeNames[t]; !ok {
		return 0, errors.InvalidEnum(errors.PhaseConvert, []string{"image_type"}, raw, "cl_mem_object_type")
	}
	return t, nil
}
