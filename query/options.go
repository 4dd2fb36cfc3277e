package query

// Option configures a Builder.
type Option func(*Builder)

// WithColumnTable qualifies every generated column reference with the
// given table name. By default columns are emitted unqualified.
func WithColumnTable(table string) Option {
	return func(b *Builder) {
		b.table = table
	}
}

// WithAllowedColumns restricts filtering and ordering to the given field
// keys. Without this option every column of the schema is permitted; an
// explicitly empty key list permits none.
func WithAllowedColumns(keys ...string) Option {
	return func(b *Builder) {
		if b.allowed == nil {
			b.allowed = make(map[string]struct{}, len(keys))
		}
		for _, key := range keys {
			b.allowed[key] = struct{}{}
		}
	}
}

// WithoutCoercion disables operand coercion against the target column's
// Go type. Operands are then handed to the driver exactly as decoded from
// JSON.
func WithoutCoercion() Option {
	return func(b *Builder) {
		b.coerce = false
	}
}
