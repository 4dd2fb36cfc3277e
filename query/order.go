package query

import (
	"strings"

	"gorm.io/gorm/clause"
)

// BuildOrder compiles a list of "field asc"/"field desc" entries into
// order-by columns. The direction defaults to ascending when missing or
// unrecognized. Entries referencing unknown or disallowed fields are
// skipped: unlike filters, a dropped ordering never widens a result set,
// so the safe fallback is the schema's natural order.
func (b *Builder) BuildOrder(orderings []string) []clause.OrderByColumn {
	columns := make([]clause.OrderByColumn, 0, len(orderings))
	for _, entry := range orderings {
		key, dir, _ := strings.Cut(strings.TrimSpace(entry), " ")
		if key == "" {
			continue
		}
		field, err := b.lookUp(key)
		if err != nil {
			continue
		}
		columns = append(columns, clause.OrderByColumn{
			Column: b.column(field),
			Desc:   normalizeDirection(dir) == "DESC",
		})
	}
	return columns
}

// normalizeDirection maps a raw direction token to ASC or DESC, defaulting
// to ASC.
func normalizeDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return "DESC"
	}
	return "ASC"
}
