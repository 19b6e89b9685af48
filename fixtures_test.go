package typename

import "errors"

// enumKind selects the active variant of testEnum.
type enumKind int

const (
	unitVariant enumKind = iota
	renamed
	holdsData
	holdsDataAsTuple
	holdsDataAsStruct
)

var enumVariants = []string{"UnitVariant", "RENAMED", "HoldsData", "HoldsDataAsTuple", "HoldsDataAsStruct"}

// testEnum is a sum type with one plain unit variant, one renamed unit
// variant, and three data-carrying variants.
type testEnum struct {
	kind  enumKind
	a, b  uint8
	field uint8
}

func (e testEnum) Serialize(s Serializer) error {
	switch e.kind {
	case unitVariant:
		return s.UnitVariant("Enum", "UnitVariant")
	case renamed:
		return s.UnitVariant("Enum", "RENAMED")
	case holdsData:
		return s.NewtypeVariant("Enum", "HoldsData", uint8Value(e.a))
	case holdsDataAsTuple:
		tv, err := s.TupleVariant("Enum", "HoldsDataAsTuple", 2)
		if err != nil {
			return err
		}
		if err := tv.Element(uint8Value(e.a)); err != nil {
			return err
		}
		if err := tv.Element(uint8Value(e.b)); err != nil {
			return err
		}
		return tv.End()
	case holdsDataAsStruct:
		sv, err := s.StructVariant("Enum", "HoldsDataAsStruct", 1)
		if err != nil {
			return err
		}
		if err := sv.Field("field", uint8Value(e.field)); err != nil {
			return err
		}
		return sv.End()
	}
	return errors.New("unknown variant")
}

func (e *testEnum) Deserialize(d Deserializer) error {
	vd, err := d.Enum("Enum", enumVariants)
	if err != nil {
		return err
	}
	switch vd.Index() {
	case 0:
		if err := vd.Unit(); err != nil {
			return err
		}
		e.kind = unitVariant
		return nil
	case 1:
		if err := vd.Unit(); err != nil {
			return err
		}
		e.kind = renamed
		return nil
	case 2:
		dd, err := vd.Newtype()
		if err != nil {
			return err
		}
		e.kind = holdsData
		return uint8Slot{&e.a}.Deserialize(dd)
	case 3:
		sd, err := vd.Tuple(2)
		if err != nil {
			return err
		}
		e.kind = holdsDataAsTuple
		for _, dst := range []*uint8{&e.a, &e.b} {
			if _, err := sd.Element(uint8Slot{dst}); err != nil {
				return err
			}
		}
		return nil
	case 4:
		md, err := vd.Struct([]string{"field"})
		if err != nil {
			return err
		}
		e.kind = holdsDataAsStruct
		return decodeFields(md, map[string]*uint8{"field": &e.field})
	}
	return errors.New("unknown variant")
}

// uint8Value and uint8Slot carry a byte through the serialization contracts.
type uint8Value uint8

func (v uint8Value) Serialize(s Serializer) error { return s.Uint(uint64(v)) }

type uint8Slot struct{ dst *uint8 }

func (s uint8Slot) Deserialize(d Deserializer) error {
	v, err := d.Uint()
	if err != nil {
		return err
	}
	*s.dst = uint8(v)
	return nil
}

func decodeFields(md MapDeserializer, fields map[string]*uint8) error {
	for {
		var key string
		ok, err := md.Key(DeserializeFunc(func(d Deserializer) error {
			k, err := d.String()
			if err != nil {
				return err
			}
			key = k
			return nil
		}))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		dst, ok := fields[key]
		if !ok {
			return errors.New("unknown field " + key)
		}
		if err := md.Value(uint8Slot{dst}); err != nil {
			return err
		}
	}
}

// unitStruct mirrors the bare marker struct from the package docs.
type unitStruct struct{}

func (unitStruct) Serialize(s Serializer) error { return s.UnitStruct("UnitStruct") }

func (*unitStruct) Deserialize(d Deserializer) error { return d.UnitStruct("UnitStruct") }

// tupleStruct carries two positional values.
type tupleStruct struct{ a, b uint8 }

func (t tupleStruct) Serialize(s Serializer) error {
	ts, err := s.TupleStruct("TupleStruct", 2)
	if err != nil {
		return err
	}
	if err := ts.Element(uint8Value(t.a)); err != nil {
		return err
	}
	if err := ts.Element(uint8Value(t.b)); err != nil {
		return err
	}
	return ts.End()
}

func (t *tupleStruct) Deserialize(d Deserializer) error {
	sd, err := d.TupleStruct("TupleStruct", 2)
	if err != nil {
		return err
	}
	for _, dst := range []*uint8{&t.a, &t.b} {
		if _, err := sd.Element(uint8Slot{dst}); err != nil {
			return err
		}
	}
	return nil
}

// fieldStruct carries one named field.
type fieldStruct struct{ field uint8 }

func (f fieldStruct) Serialize(s Serializer) error {
	st, err := s.Struct("Struct", 1)
	if err != nil {
		return err
	}
	if err := st.Field("field", uint8Value(f.field)); err != nil {
		return err
	}
	return st.End()
}

func (f *fieldStruct) Deserialize(d Deserializer) error {
	md, err := d.Struct("Struct", []string{"field"})
	if err != nil {
		return err
	}
	return decodeFields(md, map[string]*uint8{"field": &f.field})
}

// poison errors on any serialization attempt, proving that discarded field
// values are never visited.
type poison struct{}

func (poison) Serialize(Serializer) error {
	return errors.New("discarded field value was serialized")
}
