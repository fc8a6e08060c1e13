package props

import (
	clcore "github.com/gpubind/cl-core"
	"github.com/gpubind/cl-core/internal/binary"
)

// Properties is an ordered context-property list. The zero value is
// usable and equal to New(). Builder methods copy-and-append, so calls
// chain and intermediate lists stay valid:
//
//	list := props.New().Platform(id).InteropUserSync(true)
//
// Appending never replaces an earlier entry, in this list or in any
// list it was built from. When the same kind appears more than once,
// readers such as GetPlatform take the last occurrence.
type Properties struct {
	list []Property
}

// New returns an empty property list.
func New() Properties {
	return Properties{}
}

// Platform appends a platform selection (builder-style).
func (p Properties) Platform(id clcore.PlatformID) Properties {
	return p.with(Platform{ID: id})
}

// InteropUserSync appends the user-sync flag (builder-style).
func (p Properties) InteropUserSync(sync bool) Properties {
	return p.with(InteropUserSync{Sync: sync})
}

// And appends an arbitrary property (builder-style).
func (p Properties) And(prop Property) Properties {
	return p.with(prop)
}

// with returns a new list with prop appended. The backing array is
// never shared with the receiver, so lists forked from a common base
// cannot overwrite each other's entries.
func (p Properties) with(prop Property) Properties {
	list := make([]Property, len(p.list), len(p.list)+1)
	copy(list, p.list)
	return Properties{list: append(list, prop)}
}

// GetPlatform returns the platform from the last Platform entry, or
// false if the list has none.
func (p Properties) GetPlatform() (clcore.PlatformID, bool) {
	var (
		id    clcore.PlatformID
		found bool
	)
	for _, prop := range p.list {
		if plat, ok := prop.(Platform); ok {
			id = plat.ID
			found = true
		}
	}
	return id, found
}

// Len returns the number of entries in the list.
func (p Properties) Len() int {
	return len(p.list)
}

// List returns the underlying entries in append order.
func (p Properties) List() []Property {
	return p.list
}

// Bytes encodes the list into the packed wire format consumed by the
// native create-context call. Unencodable variants are skipped. Bytes
// does not modify the list; repeated calls yield identical output.
func (p Properties) Bytes() []byte {
	w := binary.NewWriter()

	for _, prop := range p.list {
		switch v := prop.(type) {
		case Platform:
			w.WriteU32(v.KindTag())
			w.Pad32()
			w.WriteWord(v.ID.Raw())
			w.Pad32()
		case InteropUserSync:
			w.WriteU32(v.KindTag())
			w.Pad32()
			w.WriteBool(v.Sync)
			w.Pad32()
		default:
			// Interop variants carry handles the encoder has no layout
			// for yet. Skipped, not rejected.
			continue
		}
	}

	// Terminating zero, pointer-sized.
	w.WriteWord(0)

	return w.Bytes()
}
