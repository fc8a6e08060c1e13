// Package resource provides a borrow-counted table for native memory
// object handles.
//
// The core value types never track the validity of the Mem handles
// they reference; a descriptor projection reads the raw handle and
// trusts the caller to keep the object alive. Binding layers that want
// that contract enforced can route their memory objects through a
// Table:
//
//	table := resource.NewTable()
//	h := table.Register(mem)
//
//	// Around a native call that consumes a projection of mem:
//	m, ok := table.Borrow(h)
//	defer table.Return(h)
//
//	// Release refuses while a borrow is outstanding:
//	err := table.Release(h) // errors.KindBorrowed until Return
//
// # Observers
//
// Observers receive lifecycle events (registered, released, borrowed,
// returned) and are useful for leak diagnostics. The package logger
// (SetLogger) emits the same events at debug level via zap.
//
// # Ownership
//
// The table does not release native objects. Release only removes the
// entry; invoking the native release call on the returned Mem remains
// the binding layer's job.
package resource
