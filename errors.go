package admin

import "fmt"

// NotSupportedColumnError is returned when a column's type has no admin
// field mapping.
type NotSupportedColumnError struct {
	Column string
	Type   string
}

func (e NotSupportedColumnError) Error() string {
	return fmt.Sprintf("column %s: type %s is not supported", e.Column, e.Type)
}

// UnknownFieldKeyError is returned when a registration field spec
// references neither a column nor a relationship of the model.
type UnknownFieldKeyError struct {
	Key string
}

func (e UnknownFieldKeyError) Error() string {
	return fmt.Sprintf("can't find field with key %q", e.Key)
}

// DuplicateViewError is returned when two views register under the same
// identity.
type DuplicateViewError struct {
	Identity string
}

func (e DuplicateViewError) Error() string {
	return fmt.Sprintf("view already registered for identity %q", e.Identity)
}
