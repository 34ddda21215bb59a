package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when the registry cannot be loaded or queried.
	ErrUnavailable = errors.New("type registry unavailable")
	// ErrMissingConstant is returned when a type does not declare the requested constant.
	ErrMissingConstant = errors.New("missing constant")
)

// Handle identifies a type within the registry that issued it.
type Handle int

// Registry is the read-only capability the catalog builder consumes.
type Registry interface {
	// PrimitiveTypes lists primitive types in discovery order.
	// Pointer-sized integer types are never listed.
	PrimitiveTypes() ([]Handle, error)
	// Constant returns the string form of the named constant declared by the type.
	Constant(h Handle, name string) (string, error)
	// CanonicalName returns the fully qualified name of the type.
	CanonicalName(h Handle) string
	// DisplayAlias returns the short source-level name of the type.
	DisplayAlias(h Handle) string
}

// Hierarchy is implemented by registries that model reference types.
type Hierarchy interface {
	// RootType returns the class every other class derives from, the one with no parent.
	RootType() (Handle, bool)
}

// Entry declares a single type of a Static registry.
type Entry struct {
	Canonical string
	Alias     string
	// Primitive marks built-in scalar types.
	Primitive bool
	// PointerSized marks integers whose width follows the platform pointer size.
	PointerSized bool
	// Class marks reference types taking part in the class hierarchy.
	Class bool
	// Parent is the canonical name of the base class, empty for none.
	Parent    string
	Constants map[string]string
}

// Static is a registry over a statically declared table.
// It is immutable after construction.
type Static struct {
	entries []Entry
	byName  map[string]Handle
}

// NewStatic creates a registry from the given entries, keeping their order.
func NewStatic(entries ...Entry) *Static {
	s := &Static{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]Handle, len(entries)),
	}

	copy(s.entries, entries)

	for i, e := range s.entries {
		if _, ok := s.byName[e.Canonical]; !ok {
			s.byName[e.Canonical] = Handle(i)
		}
	}

	return s
}

// PrimitiveTypes implements Registry.
func (s *Static) PrimitiveTypes() ([]Handle, error) {
	if s == nil {
		return nil, ErrUnavailable
	}

	var res []Handle
	for i, e := range s.entries {
		if !e.Primitive || e.PointerSized {
			continue
		}

		res = append(res, Handle(i))
	}

	return res, nil
}

// Constant implements Registry.
func (s *Static) Constant(h Handle, name string) (string, error) {
	e, err := s.entry(h)
	if err != nil {
		return "", err
	}

	value, ok := e.Constants[name]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrMissingConstant, e.Canonical, name)
	}

	return value, nil
}

// CanonicalName implements Registry.
func (s *Static) CanonicalName(h Handle) string {
	e, err := s.entry(h)
	if err != nil {
		return ""
	}

	return e.Canonical
}

// DisplayAlias implements Registry.
// Types declared without an alias are displayed by their canonical name.
func (s *Static) DisplayAlias(h Handle) string {
	e, err := s.entry(h)
	if err != nil {
		return ""
	}

	if e.Alias == "" {
		return e.Canonical
	}

	return e.Alias
}

// RootType implements Hierarchy.
func (s *Static) RootType() (Handle, bool) {
	if s == nil {
		return 0, false
	}

	for i, e := range s.entries {
		if e.Class && e.Parent == "" {
			return Handle(i), true
		}
	}

	return 0, false
}

// Parent returns the base class of a class, if it has one in the registry.
func (s *Static) Parent(h Handle) (Handle, bool) {
	e, err := s.entry(h)
	if err != nil || e.Parent == "" {
		return 0, false
	}

	parent, ok := s.byName[e.Parent]

	return parent, ok
}

// Lookup returns the handle of the type with the given canonical name.
func (s *Static) Lookup(canonical string) (Handle, bool) {
	if s == nil {
		return 0, false
	}

	h, ok := s.byName[canonical]

	return h, ok
}

func (s *Static) entry(h Handle) (*Entry, error) {
	if s == nil {
		return nil, ErrUnavailable
	}

	if h < 0 || int(h) >= len(s.entries) {
		return nil, fmt.Errorf("unknown type handle %d", h)
	}

	return &s.entries[h], nil
}
