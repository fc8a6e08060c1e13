// Package clcore provides typed Go representations of the OpenCL host
// API's data structures.
//
// The library translates between idiomatic Go values and the flat,
// pointer-and-integer representations the native OpenCL interface
// consumes: packed context-property lists, integer-coded image formats,
// and fixed-layout image descriptors. It does not invoke the native API
// itself; a separate binding layer is expected to pass the artifacts
// produced here across the C boundary.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	clcore/          Root package with opaque native handle types
//	├── native/      Raw ABI constants and fixed-layout structs
//	├── props/       Context-property list builder and byte codec
//	├── image/       Image format enumerants, pixel sizing, descriptors
//	├── buffer/      Sub-buffer region description
//	├── resource/    Mem handle table with borrow tracking
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Pack a context-property list for a native create-context call:
//
//	list := props.New().
//	    Platform(platformID).
//	    InteropUserSync(true)
//	raw := list.Bytes()
//
// Describe an RGBA image and project it to the raw descriptor:
//
//	format := image.NewFormat(image.ChannelOrderRGBA, image.ChannelDataTypeUNormInt8)
//	desc := image.NewDescriptor(image.MemObjectImage2D, 640, 480, 1, 0, 0, 0, nil)
//	rawDesc := desc.ToRaw()
//
// # ABI Fidelity
//
// Every byte emitted by this library is part of a compatibility
// contract with the native OpenCL implementation. Enumerant codes,
// struct field order, padding, and the property wire format follow the
// Khronos headers exactly and use the host platform's byte order and
// word size.
//
// # Lifetime Contract
//
// Handle types (PlatformID, Mem) are non-owning. In particular, a
// descriptor that references a buffer Mem reads the raw handle at
// projection time; the caller must keep that memory object alive until
// the native call consuming the projection has returned. The resource
// package provides a borrow-counted table for binding layers that want
// this enforced.
//
// # Thread Safety
//
// All value types in props, image, and buffer are plain data with no
// shared state and may be used from multiple goroutines without
// coordination. resource.Table is safe for concurrent use.
package clcore
