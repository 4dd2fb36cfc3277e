package fields

// HasOne links a row to at most one row of another registered view. It is
// emitted for belongs-to and singular has-one relationships.
type HasOne struct {
	BaseField
	// Identity is the slug of the related view.
	Identity string `json:"identity"`
}

// NewHasOne creates a to-one relation field bound to name, pointing at the
// view registered under identity.
func NewHasOne(name, identity string) *HasOne {
	f := &HasOne{BaseField: newBase(name), Identity: identity}
	f.Searchable = false
	f.Orderable = false
	return f
}

// TypeName implements Field.
func (f *HasOne) TypeName() string { return "has_one" }

// HasMany links a row to any number of rows of another registered view. It
// is emitted for has-many and many-to-many relationships.
type HasMany struct {
	BaseField
	// Identity is the slug of the related view.
	Identity string `json:"identity"`
}

// NewHasMany creates a to-many relation field bound to name, pointing at
// the view registered under identity.
func NewHasMany(name, identity string) *HasMany {
	f := &HasMany{BaseField: newBase(name), Identity: identity}
	f.Searchable = false
	f.Orderable = false
	return f
}

// TypeName implements Field.
func (f *HasMany) TypeName() string { return "has_many" }
