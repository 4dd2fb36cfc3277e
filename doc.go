// Package admin adapts gorm model metadata to a framework-agnostic admin
// field model. It walks a parsed gorm schema once per view registration,
// converting columns into field descriptors and relationships into
// relation fields, and compiles the admin UI's filter/sort descriptors
// into gorm clause expressions through the query subpackage.
//
// The package performs no query execution; registered views only hold
// metadata and hand predicate objects back to the caller.
package admin
