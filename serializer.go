package typename

// Serializable is implemented by values that can describe their own shape
// to a Serializer. A value declares exactly what it is (a primitive, a
// named unit, a struct with N fields) by invoking the matching callback.
type Serializable interface {
	Serialize(s Serializer) error
}

// SerializeFunc adapts a function to the Serializable interface.
type SerializeFunc func(s Serializer) error

// Serialize calls f.
func (f SerializeFunc) Serialize(s Serializer) error { return f(s) }

// Serializer receives the structural description of a value. It declares
// one callback per data shape; an implementation must provide all of them,
// even if most reject the shape.
//
// Compound shapes are serialized in two phases: the begin call declares the
// shape and returns a sub-serializer, and the value's logic then feeds
// elements or fields into it, finishing with End.
type Serializer interface {
	// Bool serializes a bare boolean.
	Bool(v bool) error

	// Int serializes a signed integer of any width.
	Int(v int64) error

	// Uint serializes an unsigned integer of any width.
	Uint(v uint64) error

	// Float serializes a floating point number of any width.
	Float(v float64) error

	// Rune serializes a single character.
	Rune(v rune) error

	// String serializes a bare string.
	String(v string) error

	// Bytes serializes a raw byte sequence.
	Bytes(v []byte) error

	// None serializes an absent optional value.
	None() error

	// Some serializes a present optional value.
	Some(v Serializable) error

	// Unit serializes the empty value.
	Unit() error

	// UnitStruct serializes a named marker type carrying no data.
	UnitStruct(name string) error

	// UnitVariant serializes an enum variant carrying no data.
	UnitVariant(enum, variant string) error

	// NewtypeStruct serializes a named single-value wrapper.
	NewtypeStruct(name string, v Serializable) error

	// NewtypeVariant serializes an enum variant wrapping a single value.
	NewtypeVariant(enum, variant string, v Serializable) error

	// Seq begins a sequence of n elements.
	Seq(n int) (SeqSerializer, error)

	// Tuple begins a tuple of n elements with no type identity.
	Tuple(n int) (SeqSerializer, error)

	// TupleStruct begins a named tuple of n elements.
	TupleStruct(name string, n int) (SeqSerializer, error)

	// TupleVariant begins an enum variant holding n positional values.
	TupleVariant(enum, variant string, n int) (SeqSerializer, error)

	// Map begins a map of n entries.
	Map(n int) (MapSerializer, error)

	// Struct begins a named struct with n fields.
	Struct(name string, n int) (StructSerializer, error)

	// StructVariant begins an enum variant holding n named fields.
	StructVariant(enum, variant string, n int) (StructSerializer, error)
}

// SeqSerializer receives the elements of a sequence, tuple, tuple struct,
// or tuple variant.
type SeqSerializer interface {
	// Element serializes the next element.
	Element(v Serializable) error

	// End finishes the sequence.
	End() error
}

// MapSerializer receives the entries of a map, one Key/Value pair at a time.
type MapSerializer interface {
	// Key serializes the next entry's key.
	Key(k Serializable) error

	// Value serializes the value for the most recent key.
	Value(v Serializable) error

	// End finishes the map.
	End() error
}

// StructSerializer receives the fields of a struct or struct variant.
type StructSerializer interface {
	// Field serializes the named field.
	Field(name string, v Serializable) error

	// End finishes the struct.
	End() error
}
