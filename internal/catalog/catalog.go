package catalog

import (
	"fmt"
	"slices"

	"type-catalog/primitive"
)

// Descriptor describes a single primitive type. It is immutable.
type Descriptor struct {
	displayName   string
	canonicalName string
	minValue      string
	maxValue      string
	category      primitive.CategoryEnum
}

// NewDescriptor creates a descriptor.
func NewDescriptor(displayName, canonicalName, minValue, maxValue string, category primitive.CategoryEnum) Descriptor {
	return Descriptor{
		displayName:   displayName,
		canonicalName: canonicalName,
		minValue:      minValue,
		maxValue:      maxValue,
		category:      category,
	}
}

func (d Descriptor) DisplayName() string { return d.displayName }
func (d Descriptor) CanonicalName() string { return d.canonicalName }
func (d Descriptor) MinValue() string { return d.minValue }
func (d Descriptor) MaxValue() string { return d.maxValue }
func (d Descriptor) Category() primitive.CategoryEnum { return d.category }

// Catalog is an ordered, read-only collection of descriptors.
// Every descriptor has a valid category and a unique canonical name.
type Catalog struct {
	descriptors []Descriptor
	index       map[string]int
}

// New creates a catalog from descriptors, keeping their order.
func New(descriptors ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if err := c.add(d); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) add(d Descriptor) error {
	if !d.category.IsValid() {
		return fmt.Errorf("%w: %s has category %d", ErrInvalidCategory, d.canonicalName, d.category)
	}

	if _, ok := c.index[d.canonicalName]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, d.canonicalName)
	}

	c.index[d.canonicalName] = len(c.descriptors)
	c.descriptors = append(c.descriptors, d)

	return nil
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.descriptors)
}

// At returns the i-th descriptor in discovery order.
func (c *Catalog) At(i int) Descriptor {
	return c.descriptors[i]
}

// All returns a copy of the descriptors in discovery order.
func (c *Catalog) All() []Descriptor {
	if c == nil {
		return nil
	}

	return slices.Clone(c.descriptors)
}

// Lookup returns the descriptor with the given canonical name.
func (c *Catalog) Lookup(canonicalName string) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}

	i, ok := c.index[canonicalName]
	if !ok {
		return Descriptor{}, false
	}

	return c.descriptors[i], true
}

// ByCategory returns the descriptors of one category in discovery order.
func (c *Catalog) ByCategory(category primitive.CategoryEnum) []Descriptor {
	var res []Descriptor
	for _, d := range c.All() {
		if d.category == category {
			res = append(res, d)
		}
	}

	return res
}
