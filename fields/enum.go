package fields

// Choice is one selectable value of an enum field.
type Choice struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Enumerated is implemented by column Go types that enumerate a fixed set
// of values. The adapter detects it during schema conversion and emits an
// EnumField instead of the field the underlying kind would map to.
type Enumerated interface {
	AdminEnumChoices() []Choice
}

// CoerceKind tells the UI layer how to coerce submitted enum values back
// to the column type.
type CoerceKind string

const (
	CoerceString  CoerceKind = "str"
	CoerceInteger CoerceKind = "int"
)

// EnumField renders as a select input over a fixed choice list.
type EnumField struct {
	BaseField
	Choices []Choice   `json:"choices"`
	Coerce  CoerceKind `json:"coerce"`
}

// NewEnumField creates an enum field bound to name with an explicit choice
// list.
func NewEnumField(name string, choices []Choice, coerce CoerceKind) *EnumField {
	return &EnumField{BaseField: newBase(name), Choices: choices, Coerce: coerce}
}

// TypeName implements Field.
func (f *EnumField) TypeName() string { return "enum" }
