package catalog

import (
	"fmt"

	"type-catalog/internal/registry"
)

// RootType names the class every other class of a registry derives from.
type RootType struct {
	CanonicalName string
	DisplayName   string
}

// Root finds the root type of the registry's class hierarchy.
func Root(reg registry.Registry) (RootType, error) {
	h, ok := reg.(registry.Hierarchy)
	if !ok {
		return RootType{}, fmt.Errorf("%w: registry %T does not model a class hierarchy", ErrNoRootType, reg)
	}

	handle, ok := h.RootType()
	if !ok {
		return RootType{}, ErrNoRootType
	}

	return RootType{
		CanonicalName: reg.CanonicalName(handle),
		DisplayName:   reg.DisplayAlias(handle),
	}, nil
}
