package admin

import (
	"reflect"
	"strings"
	"unicode"

	"gorm.io/gorm/schema"
)

var namer = schema.NamingStrategy{}

// SlugifyModelName turns a Go model type name into a view identity slug,
// e.g. "SalesOrderLine" becomes "sales-order-line".
func SlugifyModelName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractFieldGoType returns the Go type behind a schema field, falling
// back to string for columns whose type the ORM could not resolve.
func ExtractFieldGoType(field *schema.Field) reflect.Type {
	if field == nil || field.IndirectFieldType == nil {
		return reflect.TypeOf("")
	}
	return field.IndirectFieldType
}

// relationKey derives the descriptor key of a relationship field using the
// same naming strategy columns use.
func relationKey(name string) string {
	return namer.ColumnName("", name)
}
