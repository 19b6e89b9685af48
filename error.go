package typename

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedKind indicates a shape this package cannot represent as
	// a bare name: unnamed shapes during encoding, data-carrying shapes
	// during decoding.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrInvalidType indicates a decode request for a payload the name
	// string cannot supply.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidVariant indicates a name that matches none of the target's
	// known variant names.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrNameConsumed indicates reuse of a decoder whose name was already
	// spent on a previous reconstruction.
	ErrNameConsumed = errors.New("name already consumed")

	// ErrNoShape indicates a Serialize implementation that returned without
	// declaring any shape at all. It is a kind of ErrUnsupportedKind.
	ErrNoShape = fmt.Errorf("%w: no shape declared", ErrUnsupportedKind)
)

// NewUnsupportedKindError wraps ErrUnsupportedKind with a description of
// the offending shape.
func NewUnsupportedKindError(description string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedKind, description)
}

// NewInvalidTypeError wraps ErrInvalidType with the shape that was
// requested from a name-only source.
func NewInvalidTypeError(requested string) error {
	return fmt.Errorf("%w: %s requested, but only a name is available", ErrInvalidType, requested)
}

// NewInvalidVariantError wraps ErrInvalidVariant with the received name and
// the names that would have matched.
func NewInvalidVariantError(received string, allowed []string) error {
	return fmt.Errorf("%w: %q is not one of [%s]", ErrInvalidVariant, received, strings.Join(allowed, ", "))
}
