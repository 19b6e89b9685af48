package typename

import (
	"errors"
	"reflect"
	"sync"
)

// Registry maps Go types to explicit names and back. Registering a type
// fixes the name NameOf reports for it, which makes the registry the rename
// mechanism for types that do not implement Serializable or Namer. Resolve
// walks the other direction, reconstructing a registered value from its
// name under the same loss contract as FromName.
type Registry struct {
	mu    sync.RWMutex
	names map[reflect.Type]string
	types map[string]reflect.Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[reflect.Type]string),
		types: make(map[string]reflect.Type),
	}
}

// Register binds v's type to name. Pointer indirection is stripped, so
// registering *T and T is equivalent. Re-registering a type replaces its
// previous name.
func (r *Registry) Register(v any, name string) error {
	if v == nil {
		return errors.New("cannot register a nil value")
	}
	if name == "" {
		return errors.New("cannot register an empty name")
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.names[t]; ok {
		delete(r.types, old)
	}
	r.names[t] = name
	r.types[name] = t
	return nil
}

// Lookup returns the registered name for t.
func (r *Registry) Lookup(t reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[t]
	return name, ok
}

// Resolve reconstructs a registered value from its name. It can only
// produce values that carry no data, so the registered type must be a
// struct with no fields. Data-carrying types fail with ErrUnsupportedKind
// and unknown names fail with ErrInvalidVariant.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, NewInvalidVariantError(name, r.Names())
	}
	if t.Kind() != reflect.Struct || t.NumField() != 0 {
		return nil, NewUnsupportedKindError(t.String() + " carries data a bare name cannot restore")
	}
	return reflect.New(t).Elem().Interface(), nil
}

// Names returns the registered names in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the registry consulted by NameOf and the package-level
// Register and Resolve helpers.
var DefaultRegistry = NewRegistry()

// Register binds v's type to name in the default registry.
func Register(v any, name string) error {
	return DefaultRegistry.Register(v, name)
}

// Resolve reconstructs a value from its name using the default registry.
func Resolve(name string) (any, error) {
	return DefaultRegistry.Resolve(name)
}
