// Package image represents image formats and descriptors for native
// image creation.
//
// A Format pairs a channel order with a channel data type and converts
// to and from the raw integer-coded pair the native API uses. PixelBytes
// derives the per-pixel byte size from two lookup tables. A Descriptor
// carries the geometry of an image resource and projects to the
// fixed-layout raw descriptor struct, reading the optional backing
// buffer's handle at projection time.
//
// Format does not validate that an order/data-type combination is one
// the native implementation supports; that is a property of the device
// and surfaces from the native create call. PixelBytes returns 0 for a
// pair it has no table entry for, which callers must read as "size
// unknown", never as zero-sized pixels.
package image
