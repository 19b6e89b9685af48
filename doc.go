// Package typename extracts the name under which a value would be
// serialized, without producing the serialized payload, and reconstructs
// values from such names when no payload is needed.
//
// A value describes its own shape through the Serializer contract. ToName
// intercepts the first named callback and returns that name, discarding any
// field data without visiting it:
//
//	type Shutdown struct{}
//
//	func (Shutdown) Serialize(s typename.Serializer) error {
//		return s.UnitStruct("Shutdown")
//	}
//
//	name, _ := typename.ToName(Shutdown{}) // "Shutdown"
//
// FromName runs the opposite direction, but only for targets that carry no
// data. A unit struct or a unit variant reconstructs from its bare name; a
// struct or variant with fields fails, because the name alone cannot
// restore the payload that was discarded:
//
//	var v Shutdown
//	err := typename.FromName("Shutdown", &v) // ok
//
// Shapes without an inherent name (integers, strings, sequences, maps,
// options, bare tuples) fail with ErrUnsupportedKind in both directions.
//
// For plain Go values that do not implement the contracts, NameOf resolves
// a name through the Namer interface, the default Registry, or the
// reflected type name.
package typename
