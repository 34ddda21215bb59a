// Package catalog builds and renders catalogs of primitive types.
//
// A catalog is built from a registry.Registry: every primitive type the
// registry lists is classified by its canonical name, and its bounds are
// read from the constants the type declares. Types no category matches are
// skipped without error.
//
// Key functions:
//   - Build / Builder.Build: registry to Catalog
//   - Format / Parse: catalog report text and back
//   - MarshalYAML / UnmarshalYAML: catalog export
//   - Root: the root type of a registry's class hierarchy
package catalog
