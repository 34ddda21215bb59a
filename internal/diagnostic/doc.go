// Package diagnostic provides structured errors, warnings and notes
// collected while building a type catalog.
//
// Key capabilities:
//   - Skipped type notes for types no category matches
//   - Missing constant and duplicate type errors
//   - A combined error for all error diagnostics
package diagnostic
