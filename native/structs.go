package native

// ImageFormat mirrors cl_image_format: two cl_uint enumerant codes.
type ImageFormat struct {
	ChannelOrder    uint32
	ChannelDataType uint32
}

// ImageDesc mirrors cl_image_desc. Field order and widths are fixed by
// the header; Go inserts the same 4 bytes of padding after Type on
// 64-bit targets that C does. Buffer holds a raw cl_mem pointer value,
// zero when the image has no backing buffer.
type ImageDesc struct {
	Type         uint32
	Width        uintptr
	Height       uintptr
	Depth        uintptr
	ArraySize    uintptr
	RowPitch     uintptr
	SlicePitch   uintptr
	NumMipLevels uint32
	NumSamples   uint32
	Buffer       uintptr
}

// BufferRegion mirrors cl_buffer_region: byte offset and byte size of
// a sub-buffer within an existing buffer object.
type BufferRegion struct {
	Origin uintptr
	Size   uintptr
}
