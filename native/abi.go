package native

import "unsafe"

// PointerSize is the width in bytes of a native pointer (and of
// size_t) on the host platform.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

// UintSize is the width in bytes of cl_uint and cl_bool.
const UintSize = 4
