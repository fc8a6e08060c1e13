// Package native defines the raw ABI surface shared with the OpenCL
// implementation: the numeric enumerant codes from the Khronos headers
// and the fixed-layout structs passed by pointer across the C boundary.
//
// Everything in this package is a compatibility contract. Constant
// values, struct field order, and field widths mirror CL/cl.h and must
// not be changed. Struct fields use uint32 where the header uses
// cl_uint and uintptr where it uses size_t or an object pointer, so Go
// field alignment reproduces the C layout on both 32- and 64-bit
// targets.
package native
