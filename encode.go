package typename

// ToName extracts the name under which v would be serialized: the active
// variant's name for enum shapes, the type's own name for named structs.
// Any field data is discarded without ever being visited. Shapes that carry
// no name (primitives, sequences, maps, bare tuples, options, the unit
// value) fail with ErrUnsupportedKind.
func ToName(v Serializable) (string, error) {
	s := &nameSerializer{}
	if err := v.Serialize(s); err != nil {
		return "", err
	}
	if !s.ok {
		return "", ErrNoShape
	}
	return s.name, nil
}

// nameSerializer implements Serializer by recording the name from the first
// named callback and rejecting everything unnamed. Begin calls for named
// compounds resolve the name immediately; the sub-serializers they return
// are inert, so the field values are never serialized.
type nameSerializer struct {
	name string
	ok   bool
}

var _ Serializer = &nameSerializer{}

func (s *nameSerializer) record(name string) {
	if !s.ok {
		s.name = name
		s.ok = true
	}
}

func (s *nameSerializer) Bool(bool) error         { return unnamed("bool") }
func (s *nameSerializer) Int(int64) error         { return unnamed("int") }
func (s *nameSerializer) Uint(uint64) error       { return unnamed("uint") }
func (s *nameSerializer) Float(float64) error     { return unnamed("float") }
func (s *nameSerializer) Rune(rune) error         { return unnamed("rune") }
func (s *nameSerializer) String(string) error     { return unnamed("string") }
func (s *nameSerializer) Bytes([]byte) error      { return unnamed("bytes") }
func (s *nameSerializer) None() error             { return unnamed("option") }
func (s *nameSerializer) Some(Serializable) error { return unnamed("option") }
func (s *nameSerializer) Unit() error             { return unnamed("unit") }

func (s *nameSerializer) UnitStruct(name string) error {
	s.record(name)
	return nil
}

func (s *nameSerializer) UnitVariant(_, variant string) error {
	s.record(variant)
	return nil
}

func (s *nameSerializer) NewtypeStruct(name string, _ Serializable) error {
	s.record(name)
	return nil
}

func (s *nameSerializer) NewtypeVariant(_, variant string, _ Serializable) error {
	s.record(variant)
	return nil
}

func (s *nameSerializer) Seq(int) (SeqSerializer, error) {
	return nil, unnamed("sequence")
}

func (s *nameSerializer) Tuple(int) (SeqSerializer, error) {
	return nil, unnamed("tuple")
}

func (s *nameSerializer) TupleStruct(name string, _ int) (SeqSerializer, error) {
	s.record(name)
	return discardSeq{}, nil
}

func (s *nameSerializer) TupleVariant(_, variant string, _ int) (SeqSerializer, error) {
	s.record(variant)
	return discardSeq{}, nil
}

func (s *nameSerializer) Map(int) (MapSerializer, error) {
	return nil, unnamed("map")
}

func (s *nameSerializer) Struct(name string, _ int) (StructSerializer, error) {
	s.record(name)
	return discardStruct{}, nil
}

func (s *nameSerializer) StructVariant(_, variant string, _ int) (StructSerializer, error) {
	s.record(variant)
	return discardStruct{}, nil
}

func unnamed(kind string) error {
	return NewUnsupportedKindError(kind + " carries no name")
}

// discardSeq and discardStruct absorb the element and field calls that
// follow a named begin call. The name is already decided at that point, so
// every call is a no-op and the payloads are never visited.
type discardSeq struct{}

func (discardSeq) Element(Serializable) error { return nil }
func (discardSeq) End() error                 { return nil }

type discardStruct struct{}

func (discardStruct) Field(string, Serializable) error { return nil }
func (discardStruct) End() error                       { return nil }
