// Package buffer describes sub-regions of native buffer objects.
//
// A Region names a byte range inside an existing buffer for sub-buffer
// creation. It carries no behavior beyond projection to the raw
// cl_buffer_region layout; offset alignment against the device's
// minimum base-address alignment is validated by the consumer of the
// projection, not here.
package buffer
