package typename

// Deserializable is implemented by types that can reconstruct themselves
// from a Deserializer by pulling the shapes they expect.
type Deserializable interface {
	Deserialize(d Deserializer) error
}

// DeserializeFunc adapts a function to the Deserializable interface.
type DeserializeFunc func(d Deserializer) error

// Deserialize calls f.
func (f DeserializeFunc) Deserialize(d Deserializer) error { return f(d) }

// Deserializer supplies values to a type's reconstruction logic. It declares
// one pull per data shape; an implementation must provide all of them, even
// if most reject the request.
type Deserializer interface {
	// Bool pulls a bare boolean.
	Bool() (bool, error)

	// Int pulls a signed integer.
	Int() (int64, error)

	// Uint pulls an unsigned integer.
	Uint() (uint64, error)

	// Float pulls a floating point number.
	Float() (float64, error)

	// Rune pulls a single character.
	Rune() (rune, error)

	// String pulls a bare string.
	String() (string, error)

	// Bytes pulls a raw byte sequence.
	Bytes() ([]byte, error)

	// Option reports whether an optional value is present. When it returns
	// true the caller pulls the wrapped shape next.
	Option() (bool, error)

	// Unit pulls the empty value.
	Unit() error

	// UnitStruct pulls a named marker type carrying no data.
	UnitStruct(name string) error

	// NewtypeStruct begins a named single-value wrapper and returns the
	// deserializer for the wrapped value.
	NewtypeStruct(name string) (Deserializer, error)

	// Seq begins a sequence of unknown length.
	Seq() (SeqDeserializer, error)

	// Tuple begins a tuple of n elements with no type identity.
	Tuple(n int) (SeqDeserializer, error)

	// TupleStruct begins a named tuple of n elements.
	TupleStruct(name string, n int) (SeqDeserializer, error)

	// Map begins a map of unknown length.
	Map() (MapDeserializer, error)

	// Struct begins a named struct with the given fields.
	Struct(name string, fields []string) (MapDeserializer, error)

	// Enum begins decoding one of the named variants. The returned
	// VariantDeserializer identifies the active variant and supplies
	// whatever data the variant carries.
	Enum(name string, variants []string) (VariantDeserializer, error)
}

// VariantDeserializer supplies the identity and payload of the active enum
// variant. The target's logic reads Index to learn which variant is active,
// then requests that variant's shape.
type VariantDeserializer interface {
	// Index returns the position of the active variant within the names
	// passed to Enum.
	Index() int

	// Unit finishes a variant carrying no data.
	Unit() error

	// Newtype returns the deserializer for a variant's single wrapped value.
	Newtype() (Deserializer, error)

	// Tuple begins a variant holding n positional values.
	Tuple(n int) (SeqDeserializer, error)

	// Struct begins a variant holding the given named fields.
	Struct(fields []string) (MapDeserializer, error)
}

// SeqDeserializer supplies the elements of a sequence, tuple, tuple struct,
// or tuple variant.
type SeqDeserializer interface {
	// Element decodes the next element into v, reporting false when the
	// sequence is exhausted.
	Element(v Deserializable) (bool, error)
}

// MapDeserializer supplies the entries of a map or the fields of a struct.
type MapDeserializer interface {
	// Key decodes the next key into k, reporting false when the map is
	// exhausted.
	Key(k Deserializable) (bool, error)

	// Value decodes the value for the most recent key.
	Value(v Deserializable) error
}
