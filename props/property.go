package props

import (
	clcore "github.com/gpubind/cl-core"
	"github.com/gpubind/cl-core/native"
)

// Property is one tagged entry in a context-property list. The variant
// set is closed: the encoder dispatches exhaustively over the concrete
// types below.
type Property interface {
	// KindTag returns the native cl_context_properties tag for this
	// property kind.
	KindTag() uint32
}

// Platform selects the platform the context is created on.
type Platform struct {
	ID clcore.PlatformID
}

// KindTag returns CL_CONTEXT_PLATFORM.
func (Platform) KindTag() uint32 { return native.ContextPlatform }

// InteropUserSync declares whether the user handles synchronization
// between the native API and other APIs sharing the context.
type InteropUserSync struct {
	Sync bool
}

// KindTag returns CL_CONTEXT_INTEROP_USER_SYNC.
func (InteropUserSync) KindTag() uint32 { return native.ContextInteropUserSync }

// GLContext carries an OpenGL context handle for sharing. Not encoded
// by Bytes.
type GLContext struct {
	Handle uintptr
}

// KindTag returns CL_GL_CONTEXT_KHR.
func (GLContext) KindTag() uint32 { return native.GLContextKHR }

// EGLDisplay carries an EGL display handle for sharing. Not encoded by
// Bytes.
type EGLDisplay struct {
	Handle uintptr
}

// KindTag returns CL_EGL_DISPLAY_KHR.
func (EGLDisplay) KindTag() uint32 { return native.EGLDisplayKHR }

// GLXDisplay carries a GLX display handle for sharing. Not encoded by
// Bytes.
type GLXDisplay struct {
	Handle uintptr
}

// KindTag returns CL_GLX_DISPLAY_KHR.
func (GLXDisplay) KindTag() uint32 { return native.GLXDisplayKHR }

// WGLHDC carries a WGL device context handle for sharing. Not encoded
// by Bytes.
type WGLHDC struct {
	Handle uintptr
}

// KindTag returns CL_WGL_HDC_KHR.
func (WGLHDC) KindTag() uint32 { return native.WGLHDCKHR }

// CGLShareGroup carries a CGL share group handle for sharing. Not
// encoded by Bytes.
type CGLShareGroup struct {
	Handle uintptr
}

// KindTag returns CL_CGL_SHAREGROUP_KHR.
func (CGLShareGroup) KindTag() uint32 { return native.CGLShareGroupKHR }
