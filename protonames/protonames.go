// Package protonames applies the name extraction contract to
// protobuf-defined types. A protobuf enum value is the wire-level analog of
// a unit variant: its declared name is recoverable without the enclosing
// message, and the name alone is enough to reconstruct the value. Messages
// only round-trip as empty (zero) values, matching the loss contract of the
// root package.
package protonames

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	typename "github.com/mara-schulke/serde-typename"
)

// EnumName returns the declared name of e's current value. Numbers outside
// the enum's declared values fail with ErrInvalidVariant.
func EnumName(e protoreflect.Enum) (string, error) {
	if e == nil {
		return "", typename.NewUnsupportedKindError("nil enum carries no name")
	}
	values := e.Descriptor().Values()
	v := values.ByNumber(e.Number())
	if v == nil {
		return "", typename.NewInvalidVariantError(fmt.Sprint(e.Number()), valueNames(values))
	}
	return string(v.Name()), nil
}

// EnumByName returns the number of the value called name within e's enum
// type. Names matching no declared value fail with ErrInvalidVariant.
func EnumByName(e protoreflect.Enum, name string) (protoreflect.EnumNumber, error) {
	if e == nil {
		return 0, typename.NewUnsupportedKindError("nil enum carries no name")
	}
	values := e.Descriptor().Values()
	v := values.ByName(protoreflect.Name(name))
	if v == nil {
		return 0, typename.NewInvalidVariantError(name, valueNames(values))
	}
	return v.Number(), nil
}

func valueNames(values protoreflect.EnumValueDescriptors) []string {
	names := make([]string, values.Len())
	for i := range names {
		names[i] = string(values.Get(i).Name())
	}
	return names
}

// MessageName returns the full name of m's message type.
func MessageName(m proto.Message) (string, error) {
	if m == nil {
		return "", typename.NewUnsupportedKindError("nil message carries no name")
	}
	return string(m.ProtoReflect().Descriptor().FullName()), nil
}

// MessageByName builds an empty message of the named type from the global
// registry. Only the zero value is ever produced; field data discarded when
// the name was extracted is not restored.
func MessageByName(name string) (proto.Message, error) {
	mt, err := protoregistry.GlobalTypes.FindMessageByName(protoreflect.FullName(name))
	if err != nil {
		return nil, fmt.Errorf("%w: no message type called %q is registered", typename.ErrInvalidVariant, name)
	}
	return mt.New().Interface(), nil
}
