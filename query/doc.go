// Package query compiles framework-agnostic filter and order descriptors
// into gorm clause expressions. Descriptors are the JSON shape the admin
// UI emits: a filter is a map of field keys to operator maps, combined
// recursively with "and" and "or"; an ordering is a list of
// "field asc"/"field desc" entries.
//
// The package never executes queries; it only resolves field keys against
// a parsed gorm schema and constructs clause.Expression values for the
// caller's own query builder.
package query
