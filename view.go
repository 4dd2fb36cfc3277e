package admin

import (
	"fmt"
	"sync"

	"github.com/tomopy03/gorm-admin/fields"
	"github.com/tomopy03/gorm-admin/query"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// schemaCache is shared by every view so each model is parsed once per
// process, matching the ORM's own schema cache contract.
var schemaCache = &sync.Map{}

// ModelView is the registration artifact binding one gorm model to the
// admin UI: its normalized field list plus compilers for the filter and
// sort descriptors the UI emits. A view holds metadata only; it never
// touches the database.
type ModelView struct {
	model    any
	schema   *schema.Schema
	identity string
	label    string

	fields     []fields.Field
	searchable []string
	sortable   []string

	filters *query.Builder
	orders  *query.Builder
}

type viewConfig struct {
	identity      string
	label         string
	fieldSpecs    []any
	searchable    []any
	searchableSet bool
	sortable      []any
	sortableSet   bool
}

// ViewOption configures a ModelView at registration.
type ViewOption func(*viewConfig)

// WithFields restricts and orders the view's fields. Entries are field
// keys or ready-made descriptors.
func WithFields(specs ...any) ViewOption {
	return func(c *viewConfig) { c.fieldSpecs = specs }
}

// WithSearchable restricts which fields accept filter descriptors.
// Entries are keys, descriptors or clause columns; calling it with no
// entries makes the view unfilterable.
func WithSearchable(keys ...any) ViewOption {
	return func(c *viewConfig) {
		c.searchable = keys
		c.searchableSet = true
	}
}

// WithSortable restricts which fields accept order descriptors. Calling
// it with no entries makes the view unsortable.
func WithSortable(keys ...any) ViewOption {
	return func(c *viewConfig) {
		c.sortable = keys
		c.sortableSet = true
	}
}

// WithIdentity overrides the identity slug derived from the model name.
func WithIdentity(identity string) ViewOption {
	return func(c *viewConfig) { c.identity = identity }
}

// WithLabel overrides the display label derived from the model name.
func WithLabel(label string) ViewOption {
	return func(c *viewConfig) { c.label = label }
}

// NewModelView parses the model's schema and runs the registration pass.
func NewModelView(model any, opts ...ViewOption) (*ModelView, error) {
	sch, err := schema.Parse(model, schemaCache, namer)
	if err != nil {
		return nil, fmt.Errorf("parse model schema: %w", err)
	}

	var cfg viewConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	specs := cfg.fieldSpecs
	if len(specs) == 0 {
		specs = defaultFieldSpecs(sch)
	}
	normalized, err := NormalizeFields(specs, sch)
	if err != nil {
		return nil, fmt.Errorf("normalize fields for %s: %w", sch.Name, err)
	}

	searchable, err := NormalizeList(cfg.searchable)
	if err != nil {
		return nil, fmt.Errorf("normalize searchable list for %s: %w", sch.Name, err)
	}
	if searchable == nil && !cfg.searchableSet {
		searchable = keysWhere(normalized, func(b *fields.BaseField) bool { return b.Searchable })
	}

	sortable, err := NormalizeList(cfg.sortable)
	if err != nil {
		return nil, fmt.Errorf("normalize sortable list for %s: %w", sch.Name, err)
	}
	if sortable == nil && !cfg.sortableSet {
		sortable = keysWhere(normalized, func(b *fields.BaseField) bool { return b.Orderable })
	}

	identity := cfg.identity
	if identity == "" {
		identity = SlugifyModelName(sch.Name)
	}
	label := cfg.label
	if label == "" {
		label = sch.Name
	}

	return &ModelView{
		model:      model,
		schema:     sch,
		identity:   identity,
		label:      label,
		fields:     normalized,
		searchable: searchable,
		sortable:   sortable,
		filters:    query.NewBuilder(sch, query.WithAllowedColumns(searchable...)),
		orders:     query.NewBuilder(sch, query.WithAllowedColumns(sortable...)),
	}, nil
}

// Identity returns the view's registry slug.
func (v *ModelView) Identity() string { return v.identity }

// Label returns the view's display label.
func (v *ModelView) Label() string { return v.label }

// Model returns the registered model value.
func (v *ModelView) Model() any { return v.model }

// Schema exposes the parsed gorm schema.
func (v *ModelView) Schema() *schema.Schema { return v.schema }

// Fields returns the normalized field list in registration order.
func (v *ModelView) Fields() []fields.Field { return v.fields }

// Searchable returns the keys filters may reference.
func (v *ModelView) Searchable() []string { return v.searchable }

// Sortable returns the keys orderings may reference.
func (v *ModelView) Sortable() []string { return v.sortable }

// PrimaryKey returns the column name of the prioritized primary key, or
// the empty string for keyless models.
func (v *ModelView) PrimaryKey() string {
	if f := v.schema.PrioritizedPrimaryField; f != nil {
		return f.DBName
	}
	return ""
}

// BuildWhere compiles a filter descriptor into a predicate for the
// caller's query builder.
func (v *ModelView) BuildWhere(where query.Where) (clause.Expression, error) {
	return v.filters.Build(where)
}

// BuildOrder compiles order descriptors into order-by columns.
func (v *ModelView) BuildOrder(orderings []string) []clause.OrderByColumn {
	return v.orders.BuildOrder(orderings)
}

func keysWhere(list []fields.Field, keep func(*fields.BaseField) bool) []string {
	keys := make([]string, 0, len(list))
	for _, f := range list {
		if keep(f.Base()) {
			keys = append(keys, f.Key())
		}
	}
	return keys
}
