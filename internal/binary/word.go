package binary

import "unsafe"

const wordSize = int(unsafe.Sizeof(uintptr(0)))
