// Package fields defines the admin field descriptor model shared between
// the schema adapter and the admin UI layer. Descriptors are transient:
// they are constructed once per view registration and carry no state of
// their own.
package fields

// Field is implemented by every admin field descriptor.
type Field interface {
	// Key returns the model field key the descriptor is bound to.
	Key() string
	// TypeName returns the UI-facing discriminator for the field kind.
	TypeName() string
	// Base exposes the shared descriptor attributes for mutation during
	// the registration pass.
	Base() *BaseField
}

// BaseField holds the attributes shared by all field descriptors.
type BaseField struct {
	Name              string `json:"name"`
	Label             string `json:"label"`
	Required          bool   `json:"required"`
	Searchable        bool   `json:"searchable"`
	Orderable         bool   `json:"orderable"`
	ExcludeFromList   bool   `json:"exclude_from_list"`
	ExcludeFromDetail bool   `json:"exclude_from_detail"`
	ExcludeFromCreate bool   `json:"exclude_from_create"`
	ExcludeFromEdit   bool   `json:"exclude_from_edit"`
}

// Key implements Field.
func (f *BaseField) Key() string { return f.Name }

// Base implements Field.
func (f *BaseField) Base() *BaseField { return f }

func newBase(name string) BaseField {
	return BaseField{
		Name:       name,
		Label:      name,
		Searchable: true,
		Orderable:  true,
	}
}

// StringField renders as a single-line text input.
type StringField struct{ BaseField }

// NewStringField creates a string field bound to name.
func NewStringField(name string) *StringField { return &StringField{newBase(name)} }

// TypeName implements Field.
func (f *StringField) TypeName() string { return "string" }

// TextAreaField renders as a multi-line text input.
type TextAreaField struct{ BaseField }

// NewTextAreaField creates a textarea field bound to name.
func NewTextAreaField(name string) *TextAreaField { return &TextAreaField{newBase(name)} }

// TypeName implements Field.
func (f *TextAreaField) TypeName() string { return "textarea" }

// BooleanField renders as a checkbox.
type BooleanField struct{ BaseField }

// NewBooleanField creates a boolean field bound to name.
func NewBooleanField(name string) *BooleanField { return &BooleanField{newBase(name)} }

// TypeName implements Field.
func (f *BooleanField) TypeName() string { return "boolean" }

// IntegerField renders as a whole-number input.
type IntegerField struct{ BaseField }

// NewIntegerField creates an integer field bound to name.
func NewIntegerField(name string) *IntegerField { return &IntegerField{newBase(name)} }

// TypeName implements Field.
func (f *IntegerField) TypeName() string { return "integer" }

// DecimalField renders as an arbitrary-precision number input. It covers
// float and decimal columns alike.
type DecimalField struct{ BaseField }

// NewDecimalField creates a decimal field bound to name.
func NewDecimalField(name string) *DecimalField { return &DecimalField{newBase(name)} }

// TypeName implements Field.
func (f *DecimalField) TypeName() string { return "decimal" }

// DateField renders as a date picker (no time of day).
type DateField struct{ BaseField }

// NewDateField creates a date field bound to name.
func NewDateField(name string) *DateField { return &DateField{newBase(name)} }

// TypeName implements Field.
func (f *DateField) TypeName() string { return "date" }

// TimeField renders as a time-of-day picker.
type TimeField struct{ BaseField }

// NewTimeField creates a time field bound to name.
func NewTimeField(name string) *TimeField { return &TimeField{newBase(name)} }

// TypeName implements Field.
func (f *TimeField) TypeName() string { return "time" }

// DateTimeField renders as a combined date and time picker.
type DateTimeField struct{ BaseField }

// NewDateTimeField creates a datetime field bound to name.
func NewDateTimeField(name string) *DateTimeField { return &DateTimeField{newBase(name)} }

// TypeName implements Field.
func (f *DateTimeField) TypeName() string { return "datetime" }

// JSONField renders as a raw JSON editor.
type JSONField struct{ BaseField }

// NewJSONField creates a JSON field bound to name.
func NewJSONField(name string) *JSONField { return &JSONField{newBase(name)} }

// TypeName implements Field.
func (f *JSONField) TypeName() string { return "json" }

// TagsField renders a one-dimensional array column as a tag list.
type TagsField struct{ BaseField }

// NewTagsField creates a tags field bound to name.
func NewTagsField(name string) *TagsField { return &TagsField{newBase(name)} }

// TypeName implements Field.
func (f *TagsField) TypeName() string { return "tags" }

// EmailField renders as an email input with client-side format hints.
type EmailField struct{ BaseField }

// NewEmailField creates an email field bound to name.
func NewEmailField(name string) *EmailField { return &EmailField{newBase(name)} }

// TypeName implements Field.
func (f *EmailField) TypeName() string { return "email" }

// URLField renders as a URL input.
type URLField struct{ BaseField }

// NewURLField creates a URL field bound to name.
func NewURLField(name string) *URLField { return &URLField{newBase(name)} }

// TypeName implements Field.
func (f *URLField) TypeName() string { return "url" }
