package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"type-catalog/primitive"
)

// Document is the YAML representation of a catalog.
type Document struct {
	Types []TypeEntry `yaml:"types"`
}

// TypeEntry is the YAML representation of a descriptor.
type TypeEntry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	Min      string `yaml:"min"`
	Max      string `yaml:"max"`
}

// Export converts a catalog into its YAML document.
func Export(c *Catalog) *Document {
	doc := &Document{Types: []TypeEntry{}}
	for _, d := range c.All() {
		doc.Types = append(doc.Types, TypeEntry{
			Name:     d.displayName,
			Type:     d.canonicalName,
			Category: d.category.Name(),
			Min:      d.minValue,
			Max:      d.maxValue,
		})
	}

	return doc
}

// MarshalYAML serializes a catalog to YAML.
func MarshalYAML(c *Catalog) ([]byte, error) {
	return yaml.Marshal(Export(c))
}

// UnmarshalYAML parses YAML produced by MarshalYAML back into a catalog.
func UnmarshalYAML(data []byte) (*Catalog, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	descriptors := make([]Descriptor, 0, len(doc.Types))
	for _, t := range doc.Types {
		category, ok := primitive.ParseCategory(t.Category)
		if !ok {
			return nil, fmt.Errorf("%w: %s has category %q", ErrInvalidCategory, t.Type, t.Category)
		}

		descriptors = append(descriptors, NewDescriptor(t.Name, t.Type, t.Min, t.Max, category))
	}

	return New(descriptors...)
}
