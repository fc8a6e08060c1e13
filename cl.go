package clcore

// PlatformID is an opaque handle to a native platform. It wraps the
// raw pointer value returned by the native API and carries no
// ownership: the platform outlives the process from the binding's
// point of view.
type PlatformID struct {
	h uintptr
}

// PlatformFromRaw wraps a raw platform handle.
func PlatformFromRaw(h uintptr) PlatformID {
	return PlatformID{h: h}
}

// Raw returns the raw platform handle for the native boundary.
func (p PlatformID) Raw() uintptr {
	return p.h
}

// IsNil reports whether the handle is the null platform.
func (p PlatformID) IsNil() bool {
	return p.h == 0
}

// Mem is an opaque handle to a native memory object (buffer or image).
// Mem is non-owning: dropping a Mem value does not release the native
// object, and nothing here tracks its validity. Callers that hand a
// Mem to a descriptor projection must keep the native object alive
// until the consuming native call returns.
type Mem struct {
	h uintptr
}

// MemFromRaw wraps a raw memory object handle.
func MemFromRaw(h uintptr) Mem {
	return Mem{h: h}
}

// Raw returns the raw memory object handle for the native boundary.
func (m Mem) Raw() uintptr {
	return m.h
}

// IsNil reports whether the handle is the null memory object.
func (m Mem) IsNil() bool {
	return m.h == 0
}
