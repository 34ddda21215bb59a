package catalog

import (
	"errors"
	"fmt"

	"type-catalog/internal/diagnostic"
	"type-catalog/internal/registry"
	"type-catalog/primitive"
)

// Option configures a Builder.
type Option func(*Builder)

// WithClassifier replaces the classifier used to recognise canonical names.
func WithClassifier(c primitive.Classifier) Option {
	return func(b *Builder) {
		b.classifier = c
	}
}

// WithCorrectedBoolean tags boolean types with CategoryBoolean.
// By default they are tagged CategoryFloatingPoint.
func WithCorrectedBoolean() Option {
	return func(b *Builder) {
		b.correctedBoolean = true
	}
}

// WithDiagnostics collects skipped types and failures into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(b *Builder) {
		b.diags = d
	}
}

// Builder builds catalogs from registries. It keeps no state between builds.
type Builder struct {
	classifier       primitive.Classifier
	correctedBoolean bool
	diags            *diagnostic.Diagnostics
}

// NewBuilder creates a Builder recognising CLR and Go canonical names.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		classifier: primitive.CLR().With(primitive.Go()),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build builds a catalog with a Builder configured by opts.
func Build(reg registry.Registry, opts ...Option) (*Catalog, error) {
	return NewBuilder(opts...).Build(reg)
}

// Build queries the registry and returns a catalog of the classified primitive types.
// Unclassified types are skipped. On error no catalog is returned.
func (b *Builder) Build(reg registry.Registry) (*Catalog, error) {
	var diags diagnostic.Diagnostics
	if b.diags != nil {
		defer func() { b.diags.Merge(diags) }()
	}

	if reg == nil {
		diags.AddError(diagnostic.CodeRegistry, "no registry", "")
		return nil, ErrRegistryUnavailable
	}

	handles, err := reg.PrimitiveTypes()
	if err != nil {
		diags.AddError(diagnostic.CodeRegistry, err.Error(), "")
		if errors.Is(err, ErrRegistryUnavailable) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	c := &Catalog{
		descriptors: make([]Descriptor, 0, len(handles)),
		index:       make(map[string]int, len(handles)),
	}

	for _, h := range handles {
		canonical := reg.CanonicalName(h)

		kind, ok := b.classifier.Classify(canonical)
		if !ok {
			diags.AddInfo(diagnostic.CodeUnclassifiedType, "no category matches, skipped", canonical)
			continue
		}

		d, err := b.describe(reg, h, canonical, kind)
		if err != nil {
			diags.AddError(diagnostic.CodeMissingConstant, err.Error(), canonical)
			return nil, err
		}

		if err := c.add(d); err != nil {
			diags.AddError(diagnostic.CodeDuplicateType, err.Error(), canonical)
			return nil, err
		}
	}

	return c, nil
}

// describe reads the bounds of a classified type.
func (b *Builder) describe(reg registry.Registry, h registry.Handle, canonical string, kind primitive.KindEnum) (Descriptor, error) {
	lowerName, upperName := kind.BoundConstants()

	lower, err := reg.Constant(h, lowerName)
	if err != nil {
		return Descriptor{}, &MissingConstantError{TypeName: canonical, Constant: lowerName, Err: err}
	}

	upper, err := reg.Constant(h, upperName)
	if err != nil {
		return Descriptor{}, &MissingConstantError{TypeName: canonical, Constant: upperName, Err: err}
	}

	category := kind.Category()
	if kind == primitive.KindBool && !b.correctedBoolean {
		category = primitive.CategoryFloatingPoint
	}

	return NewDescriptor(reg.DisplayAlias(h), canonical, lower, upper, category), nil
}
