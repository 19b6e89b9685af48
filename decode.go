package typename

// FromName reconstructs v from a name produced by ToName. Only targets
// whose reconstruction needs nothing beyond the name itself (unit structs
// and unit variants) can succeed, and only when the name matches the
// target's declared identity. Data-carrying targets fail with
// ErrUnsupportedKind, because the name never encoded the discarded payload,
// and names matching no known variant fail with ErrInvalidVariant.
func FromName(name string, v Deserializable) error {
	return v.Deserialize(&nameDeserializer{name: name})
}

// nameDeserializer implements Deserializer backed by a single name string.
// The name is consumed by the first reconstruction attempt; further
// attempts fail with ErrNameConsumed.
type nameDeserializer struct {
	name string
	used bool
}

var _ Deserializer = &nameDeserializer{}

func (d *nameDeserializer) take() (string, error) {
	if d.used {
		return "", ErrNameConsumed
	}
	d.used = true
	return d.name, nil
}

func (d *nameDeserializer) Bool() (bool, error)       { return false, NewInvalidTypeError("bool") }
func (d *nameDeserializer) Int() (int64, error)       { return 0, NewInvalidTypeError("int") }
func (d *nameDeserializer) Uint() (uint64, error)     { return 0, NewInvalidTypeError("uint") }
func (d *nameDeserializer) Float() (float64, error)   { return 0, NewInvalidTypeError("float") }
func (d *nameDeserializer) Rune() (rune, error)       { return 0, NewInvalidTypeError("rune") }
func (d *nameDeserializer) String() (string, error)   { return "", NewInvalidTypeError("string") }
func (d *nameDeserializer) Bytes() ([]byte, error)    { return nil, NewInvalidTypeError("bytes") }
func (d *nameDeserializer) Option() (bool, error)     { return false, NewInvalidTypeError("option") }

func (d *nameDeserializer) Unit() error {
	_, err := d.take()
	return err
}

func (d *nameDeserializer) UnitStruct(name string) error {
	received, err := d.take()
	if err != nil {
		return err
	}
	if received != name {
		return NewInvalidVariantError(received, []string{name})
	}
	return nil
}

func (d *nameDeserializer) NewtypeStruct(name string) (Deserializer, error) {
	return nil, dataCarrying("newtype struct " + name)
}

func (d *nameDeserializer) Seq() (SeqDeserializer, error) {
	return nil, NewInvalidTypeError("sequence")
}

func (d *nameDeserializer) Tuple(int) (SeqDeserializer, error) {
	return nil, NewInvalidTypeError("tuple")
}

func (d *nameDeserializer) TupleStruct(name string, _ int) (SeqDeserializer, error) {
	return nil, dataCarrying("tuple struct " + name)
}

func (d *nameDeserializer) Map() (MapDeserializer, error) {
	return nil, NewInvalidTypeError("map")
}

func (d *nameDeserializer) Struct(name string, _ []string) (MapDeserializer, error) {
	return nil, dataCarrying("struct " + name)
}

func (d *nameDeserializer) Enum(_ string, variants []string) (VariantDeserializer, error) {
	received, err := d.take()
	if err != nil {
		return nil, err
	}
	for i, v := range variants {
		if v == received {
			return &nameVariant{index: i, variant: v}, nil
		}
	}
	return nil, NewInvalidVariantError(received, variants)
}

func dataCarrying(kind string) error {
	return NewUnsupportedKindError(kind + " carries data a bare name cannot restore")
}

// nameVariant answers for the variant matched by Enum. Only the unit path
// succeeds; the other shapes lost their payload when the name was
// extracted. A struct variant fails even with zero fields, since asking for
// fields already leaves the unit path.
type nameVariant struct {
	index   int
	variant string
}

var _ VariantDeserializer = &nameVariant{}

func (v *nameVariant) Index() int { return v.index }

func (v *nameVariant) Unit() error { return nil }

func (v *nameVariant) Newtype() (Deserializer, error) {
	return nil, dataCarrying("newtype variant " + v.variant)
}

func (v *nameVariant) Tuple(int) (SeqDeserializer, error) {
	return nil, dataCarrying("tuple variant " + v.variant)
}

func (v *nameVariant) Struct([]string) (MapDeserializer, error) {
	return nil, dataCarrying("struct variant " + v.variant)
}
