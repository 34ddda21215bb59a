// Package registry provides the type registries the catalog is built from.
//
// A registry lists the primitive types it knows about, excluding
// pointer-sized integers, and exposes their named constants.
//
// Implementations:
//   - Static: a statically declared table of type entries
//   - NewCLR: the primitives of the common language runtime core library
//   - LoadGo: the predeclared basic types of Go, bounds read from package math
package registry
