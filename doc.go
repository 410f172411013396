// Package optmap is a declarative command-line option parsing library that
// uses reflection and struct tags to map flag strings onto configuration
// struct fields.
//
// A flag registry is derived once per configuration struct type from its
// field declarations and shared read-only across all parses, so adding,
// removing, or renaming an option in the struct automatically updates the
// parser with no separately maintained table to drift out of sync.
//
// Arguments are consumed strictly in flag/value pairs; unrecognized flags,
// unpaired trailing flags, and values that do not coerce to their field's
// type are each reported as distinct typed failures.
package optmap

//go:generate gomarkdoc ./ -o docs/optmap.md
