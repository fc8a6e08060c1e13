package native

// Context property kinds (cl_context_properties tags).
const (
	ContextPlatform        = 0x1084 // CL_CONTEXT_PLATFORM
	ContextInteropUserSync = 0x1085 // CL_CONTEXT_INTEROP_USER_SYNC

	// Interop property tags from cl_gl.h / cl_egl.h. Recognized by the
	// property list but not encoded by the codec.
	GLContextKHR     = 0x2008 // CL_GL_CONTEXT_KHR
	EGLDisplayKHR    = 0x2009 // CL_EGL_DISPLAY_KHR
	GLXDisplayKHR    = 0x200A // CL_GLX_DISPLAY_KHR
	WGLHDCKHR        = 0x200B // CL_WGL_HDC_KHR
	CGLShareGroupKHR = 0x200C // CL_CGL_SHAREGROUP_KHR
)

// Image channel orders (cl_channel_order).
const (
	ChannelOrderR         = 0x10B0 // CL_R
	ChannelOrderA         = 0x10B1 // CL_A
	ChannelOrderRG        = 0x10B2 // CL_RG
	ChannelOrderRA        = 0x10B3 // CL_RA
	ChannelOrderRGB       = 0x10B4 // CL_RGB
	ChannelOrderRGBA      = 0x10B5 // CL_RGBA
	ChannelOrderBGRA      = 0x10B6 // CL_BGRA
	ChannelOrderARGB      = 0x10B7 // CL_ARGB
	ChannelOrderIntensity = 0x10B8 // CL_INTENSITY
	ChannelOrderLuminance = 0x10B9 // CL_LUMINANCE
	ChannelOrderRx        = 0x10BA // CL_Rx
	ChannelOrderRGx       = 0x10BB // CL_RGx
	ChannelOrderRGBx      = 0x10BC // CL_RGBx
)

// Image channel data types (cl_channel_type).
const (
	ChannelDataSNormInt8      = 0x10D0 // CL_SNORM_INT8
	ChannelDataSNormInt16     = 0x10D1 // CL_SNORM_INT16
	ChannelDataUNormInt8      = 0x10D2 // CL_UNORM_INT8
	ChannelDataUNormInt16     = 0x10D3 // CL_UNORM_INT16
	ChannelDataUNormShort565  = 0x10D4 // CL_UNORM_SHORT_565
	ChannelDataUNormShort555  = 0x10D5 // CL_UNORM_SHORT_555
	ChannelDataUNormInt101010 = 0x10D6 // CL_UNORM_INT_101010
	ChannelDataSignedInt8     = 0x10D7 // CL_SIGNED_INT8
	ChannelDataSignedInt16    = 0x10D8 // CL_SIGNED_INT16
	ChannelDataSignedInt32    = 0x10D9 // CL_SIGNED_INT32
	ChannelDataUnsignedInt8   = 0x10DA // CL_UNSIGNED_INT8
	ChannelDataUnsignedInt16  = 0x10DB // CL_UNSIGNED_INT16
	ChannelDataUnsignedInt32  = 0x10DC // CL_UNSIGNED_INT32
	ChannelDataHalfFloat      = 0x10DD // CL_HALF_FLOAT
	ChannelDataFloat          = 0x10DE // CL_FLOAT
)

// Memory object types (cl_mem_object_type).
const (
	MemObjectBuffer        = 0x10F0 // CL_MEM_OBJECT_BUFFER
	MemObjectImage2D       = 0x10F1 // CL_MEM_OBJECT_IMAGE2D
	MemObjectImage3D       = 0x10F2 // CL_MEM_OBJECT_IMAGE3D
	MemObjectImage2DArray  = 0x10F3 // CL_MEM_OBJECT_IMAGE2D_ARRAY
	MemObjectImage1D       = 0x10F4 // CL_MEM_OBJECT_IMAGE1D
	MemObjectImage1DArray  = 0x10F5 // CL_MEM_OBJECT_IMAGE1D_ARRAY
	MemObjectImage1DBuffer = 0x10F6 // CL_MEM_OBJECT_IMAGE1D_BUFFER
)
