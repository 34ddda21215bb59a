package catalog

import (
	"errors"
	"fmt"

	"type-catalog/internal/registry"
)

var (
	// ErrRegistryUnavailable is returned when the registry cannot be queried.
	ErrRegistryUnavailable = registry.ErrUnavailable
	// ErrMissingConstant matches every *MissingConstantError.
	ErrMissingConstant = registry.ErrMissingConstant
	// ErrDuplicateType is returned when two types share a canonical name.
	ErrDuplicateType = errors.New("duplicate type")
	// ErrInvalidCategory is returned for descriptors without a valid category.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrNoRootType is returned when a registry has no root class.
	ErrNoRootType = errors.New("no root type")
	// ErrMalformedReport is returned when a report cannot be parsed.
	ErrMalformedReport = errors.New("malformed report")
)

// MissingConstantError is returned when a classified type lacks a bound constant.
type MissingConstantError struct {
	TypeName string
	Constant string
	Err      error
}

func (e *MissingConstantError) Error() string {
	return fmt.Sprintf("type %s does not declare constant %s: %v", e.TypeName, e.Constant, e.Err)
}

func (e *MissingConstantError) Unwrap() error {
	return e.Err
}

// Is reports ErrMissingConstant regardless of the error the registry returned.
func (e *MissingConstantError) Is(target error) bool {
	return target == ErrMissingConstant
}
