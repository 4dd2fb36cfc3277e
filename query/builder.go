package query

import (
	"fmt"
	"sort"

	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Where is a parsed filter descriptor. Keys are either the combinators
// "and"/"or" (holding a list of sub-descriptors) or field keys holding an
// operator map, e.g.:
//
//	{"or": [{"name": {"startsWith": "a"}}, {"age": {"ge": 21, "lt": 65}}]}
//
// A bare scalar value is shorthand for {"eq": value}.
type Where map[string]any

// Supported comparison operators.
const (
	OpEq         = "eq"
	OpNeq        = "neq"
	OpGe         = "ge"
	OpGt         = "gt"
	OpLe         = "le"
	OpLt         = "lt"
	OpBetween    = "between"
	OpNotBetween = "not_between"
	OpIn         = "in"
	OpNotIn      = "not_in"
	OpContains   = "contains"
	OpStartsWith = "startsWith"
	OpEndsWith   = "endsWith"
	OpNot        = "not"
)

// Builder compiles filter and order descriptors against one parsed schema.
type Builder struct {
	schema  *schema.Schema
	table   string
	allowed map[string]struct{}
	coerce  bool
}

// NewBuilder creates a Builder bound to the given schema.
func NewBuilder(sch *schema.Schema, opts ...Option) *Builder {
	b := &Builder{schema: sch, coerce: true}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build compiles a filter descriptor into a single boolean expression.
// An empty descriptor compiles to a nil expression and no error.
func (b *Builder) Build(where Where) (clause.Expression, error) {
	if len(where) == 0 {
		return nil, nil
	}

	exprs := make([]clause.Expression, 0, len(where))
	for _, key := range sortedKeys(where) {
		value := where[key]
		switch key {
		case "and", "or":
			items, ok := asList(value)
			if !ok {
				return nil, MalformedValueError{Operator: key, Reason: "expected a list of sub-filters"}
			}
			subs := make([]clause.Expression, 0, len(items))
			for _, item := range items {
				m, ok := asMap(item)
				if !ok {
					return nil, MalformedValueError{Operator: key, Reason: fmt.Sprintf("sub-filter must be an object, got %T", item)}
				}
				sub, err := b.Build(m)
				if err != nil {
					return nil, err
				}
				if sub != nil {
					subs = append(subs, sub)
				}
			}
			if len(subs) == 0 {
				continue
			}
			if key == "or" {
				exprs = append(exprs, clause.Or(subs...))
			} else {
				exprs = append(exprs, clause.And(subs...))
			}
		default:
			field, err := b.lookUp(key)
			if err != nil {
				return nil, err
			}
			expr, err := b.fieldExpression(field, value)
			if err != nil {
				return nil, err
			}
			if expr != nil {
				exprs = append(exprs, expr)
			}
		}
	}

	switch len(exprs) {
	case 0:
		return nil, nil
	case 1:
		return exprs[0], nil
	}
	return clause.And(exprs...), nil
}

// fieldExpression compiles the operator map (or scalar shorthand) bound to
// one column. Multiple operators on the same column are ANDed. An empty
// operator map constrains nothing and compiles to a nil expression.
func (b *Builder) fieldExpression(field *schema.Field, value any) (clause.Expression, error) {
	ops, ok := asMap(value)
	if !ok {
		// Scalar shorthand for equality.
		return b.operatorExpression(field, OpEq, value)
	}

	exprs := make([]clause.Expression, 0, len(ops))
	for _, op := range sortedKeys(ops) {
		expr, err := b.operatorExpression(field, op, ops[op])
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}
	switch len(exprs) {
	case 0:
		return nil, nil
	case 1:
		return exprs[0], nil
	}
	return clause.And(exprs...), nil
}

func (b *Builder) operatorExpression(field *schema.Field, op string, value any) (clause.Expression, error) {
	col := b.column(field)

	switch op {
	case OpEq:
		if value == nil {
			return clause.Eq{Column: col}, nil // IS NULL
		}
		v, err := b.coerceValue(field, op, value)
		if err != nil {
			return nil, err
		}
		return clause.Eq{Column: col, Value: v}, nil
	case OpNeq:
		if value == nil {
			return clause.Neq{Column: col}, nil // IS NOT NULL
		}
		v, err := b.coerceValue(field, op, value)
		if err != nil {
			return nil, err
		}
		return clause.Neq{Column: col, Value: v}, nil
	case OpGe:
		v, err := b.coerceValue(field, op, value)
		if err != nil {
			return nil, err
		}
		return clause.Gte{Column: col, Value: v}, nil
	case OpGt:
		v, err := b.coerceValue(field, op, value)
		if err != nil {
			return nil, err
		}
		return clause.Gt{Column: col, Value: v}, nil
	case OpLe:
		v, err := b.coerceValue(field, op, value)
		if err != nil {
			return nil, err
		}
		return clause.Lte{Column: col, Value: v}, nil
	case OpLt:
		v, err := b.coerceValue(field, op, value)
		if err != nil {
			return nil, err
		}
		return clause.Lt{Column: col, Value: v}, nil
	case OpBetween, OpNotBetween:
		bounds, ok := value.([]any)
		if !ok || len(bounds) != 2 {
			return nil, MalformedValueError{Operator: op, Reason: "expected a list of exactly two bounds"}
		}
		lo, err := b.coerceValue(field, op, bounds[0])
		if err != nil {
			return nil, err
		}
		hi, err := b.coerceValue(field, op, bounds[1])
		if err != nil {
			return nil, err
		}
		between := clause.Expr{SQL: "? BETWEEN ? AND ?", Vars: []any{col, lo, hi}}
		if op == OpNotBetween {
			return clause.Not(between), nil
		}
		return between, nil
	case OpIn, OpNotIn:
		items, ok := value.([]any)
		if !ok {
			return nil, MalformedValueError{Operator: op, Reason: "expected a list of values"}
		}
		values := make([]any, len(items))
		for i, item := range items {
			v, err := b.coerceValue(field, op, item)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		in := clause.IN{Column: col, Values: values}
		if op == OpNotIn {
			return clause.Not(in), nil
		}
		return in, nil
	case OpContains, OpStartsWith, OpEndsWith:
		s, ok := value.(string)
		if !ok {
			return nil, MalformedValueError{Operator: op, Reason: fmt.Sprintf("expected a string, got %T", value)}
		}
		var pattern string
		switch op {
		case OpContains:
			pattern = "%" + s + "%"
		case OpStartsWith:
			pattern = s + "%"
		case OpEndsWith:
			pattern = "%" + s
		}
		return clause.Like{Column: col, Value: pattern}, nil
	case OpNot:
		m, ok := asMap(value)
		if !ok {
			return nil, MalformedValueError{Operator: op, Reason: "expected an operator map"}
		}
		inner, err := b.fieldExpression(field, m)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, nil
		}
		return clause.Not(inner), nil
	default:
		return nil, UnknownOperatorError{Operator: op}
	}
}

// lookUp resolves a descriptor key to a schema field, honoring the allow
// list. Keys match either the struct field name or the column name.
func (b *Builder) lookUp(key string) (*schema.Field, error) {
	field := b.schema.LookUpField(key)
	if field == nil || field.DBName == "" {
		return nil, UnknownFieldError{Field: key}
	}
	if b.allowed != nil {
		if _, ok := b.allowed[field.DBName]; !ok {
			if _, ok := b.allowed[field.Name]; !ok {
				return nil, ColumnNotAllowedError{Column: key}
			}
		}
	}
	return field, nil
}

func (b *Builder) column(field *schema.Field) clause.Column {
	return clause.Column{Table: b.table, Name: field.DBName}
}

func asMap(value any) (Where, bool) {
	switch v := value.(type) {
	case Where:
		return v, true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []Where:
		items := make([]any, len(v))
		for i, w := range v {
			items[i] = w
		}
		return items, true
	case []map[string]any:
		items := make([]any, len(v))
		for i, w := range v {
			items[i] = w
		}
		return items, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
