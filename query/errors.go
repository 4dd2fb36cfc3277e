package query

import "fmt"

// UnknownFieldError is returned when a filter descriptor references a key
// that does not resolve to a column of the bound schema. Unresolvable keys
// are an error rather than a silent skip: dropping a predicate would widen
// the result set.
type UnknownFieldError struct {
	Field string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.Field)
}

// ColumnNotAllowedError is returned when a filter references a column that
// resolves but is outside the builder's allow list.
type ColumnNotAllowedError struct {
	Column string
}

func (e ColumnNotAllowedError) Error() string {
	return fmt.Sprintf("column not allowed: %s", e.Column)
}

// UnknownOperatorError is returned for operator keys outside the supported
// comparison set.
type UnknownOperatorError struct {
	Operator string
}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %s", e.Operator)
}

// MalformedValueError is returned when an operand does not have the shape
// its operator requires.
type MalformedValueError struct {
	Operator string
	Reason   string
}

func (e MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value for operator %s: %s", e.Operator, e.Reason)
}
