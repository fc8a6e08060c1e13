// Package props builds and encodes context-property lists.
//
// A native create-context call accepts its configuration as a packed
// array of tagged values. This package provides a builder for the list
// and the byte-exact encoder for the wire format:
//
//	list := props.New().
//	    Platform(platformID).
//	    InteropUserSync(true)
//	raw := list.Bytes()
//
// # Wire Format
//
// For each encodable entry, in append order:
//
//	u32 kind tag      native endian
//	4 zero bytes      padding
//	value             pointer-sized for Platform, 4-byte bool for InteropUserSync
//	4 zero bytes      padding
//
// followed by one pointer-sized zero terminator.
//
// # Policy
//
// Appends never replace earlier entries; duplicate kinds are allowed
// and readers resolve them last-write-wins. Property variants the
// encoder does not support (the GL/EGL interop tags) are skipped
// silently rather than rejected, matching the behavior binding layers
// already depend on.
package props
