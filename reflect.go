package typename

import "reflect"

// Namer lets a type override the name derived from its Go type, the same
// way a rename annotation overrides a default identifier.
type Namer interface {
	TypeName() string
}

// NameOf extracts a name from an arbitrary Go value. Values implementing
// Serializable are driven through ToName; for everything else the name is
// resolved by trying, in order, the Namer interface, the default registry,
// and the reflected type name. Builtin, anonymous, and unnamed composite
// types fail with ErrUnsupportedKind.
func NameOf(v any) (string, error) {
	switch v := v.(type) {
	case Serializable:
		return ToName(v)
	case Namer:
		return v.TypeName(), nil
	case nil:
		return "", NewUnsupportedKindError("nil carries no name")
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name, ok := DefaultRegistry.Lookup(t); ok {
		return name, nil
	}
	if t.Name() == "" {
		return "", NewUnsupportedKindError(t.Kind().String() + " carries no name")
	}
	if t.PkgPath() == "" {
		return "", NewUnsupportedKindError("builtin " + t.Name() + " carries no name")
	}
	return t.Name(), nil
}
