package admin

import (
	"fmt"

	"github.com/tomopy03/gorm-admin/fields"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// NormalizeFields resolves a registration field list against a parsed
// schema. Ready-made descriptors pass through untouched; string keys are
// resolved first against relationships, then against columns. Foreign-key
// columns are dropped (they surface through their relation field), and
// required/exclusion flags are inferred from the column metadata.
func NormalizeFields(specs []any, sch *schema.Schema) ([]fields.Field, error) {
	normalized := make([]fields.Field, 0, len(specs))
	for _, spec := range specs {
		switch v := spec.(type) {
		case fields.Field:
			normalized = append(normalized, v)
		case string:
			field, ok, err := resolveKey(v, sch)
			if err != nil {
				return nil, err
			}
			if ok {
				normalized = append(normalized, field)
			}
		default:
			return nil, fmt.Errorf("expected string or fields.Field, got %T", spec)
		}
	}
	return normalized, nil
}

// resolveKey converts one field key. ok is false when the key resolves to
// a column that should not surface (foreign keys, admin:"-").
func resolveKey(key string, sch *schema.Schema) (fields.Field, bool, error) {
	if rel := lookUpRelation(sch, key); rel != nil {
		return relationField(rel), true, nil
	}

	field := sch.LookUpField(key)
	if field == nil || field.DBName == "" {
		return nil, false, UnknownFieldKeyError{Key: key}
	}
	if parseAdminTag(field).Skip || isForeignKey(sch, field) {
		return nil, false, nil
	}

	converted, err := ConvertField(field)
	if err != nil {
		return nil, false, err
	}

	base := converted.Base()
	if field.NotNull && !field.HasDefaultValue && field.DataType != schema.Bool {
		base.Required = true
	}
	if field.PrimaryKey && (field.HasDefaultValue || field.AutoIncrement) {
		base.ExcludeFromCreate = true
		base.ExcludeFromEdit = true
	}
	return converted, true, nil
}

// relationField maps a relationship to a to-one or to-many relation
// descriptor pointing at the related model's view identity.
func relationField(rel *schema.Relationship) fields.Field {
	identity := SlugifyModelName(rel.FieldSchema.Name)
	key := relationKey(rel.Name)
	switch rel.Type {
	case schema.BelongsTo, schema.HasOne:
		return fields.NewHasOne(key, identity)
	default: // has many, many to many
		return fields.NewHasMany(key, identity)
	}
}

// lookUpRelation matches a key against a relationship by its Go field
// name or its derived descriptor key.
func lookUpRelation(sch *schema.Schema, key string) *schema.Relationship {
	if rel, ok := sch.Relationships.Relations[key]; ok {
		return rel
	}
	for _, rel := range sch.Relationships.Relations {
		if relationKey(rel.Name) == key {
			return rel
		}
	}
	return nil
}

// isForeignKey reports whether the column holds a reference to another
// schema's primary key.
func isForeignKey(sch *schema.Schema, field *schema.Field) bool {
	for _, rel := range sch.Relationships.Relations {
		for _, ref := range rel.References {
			if ref.ForeignKey == field && ref.ForeignKey.Schema == sch {
				return true
			}
		}
	}
	return false
}

// NormalizeList flattens a mixed list of keys, descriptors and clause
// columns into plain field keys.
func NormalizeList(values []any) ([]string, error) {
	if values == nil {
		return nil, nil
	}
	keys := make([]string, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case string:
			keys = append(keys, v)
		case fields.Field:
			keys = append(keys, v.Key())
		case clause.Column:
			keys = append(keys, v.Name)
		default:
			return nil, fmt.Errorf("expected string, fields.Field or clause.Column, got %T", value)
		}
	}
	return keys, nil
}

// defaultFieldSpecs lists every column and relationship of the schema in
// struct declaration order, the way an unconfigured view sees the model.
func defaultFieldSpecs(sch *schema.Schema) []any {
	specs := make([]any, 0, len(sch.Fields)+len(sch.Relationships.Relations))
	modelType := sch.ModelType
	for i := 0; i < modelType.NumField(); i++ {
		structField := modelType.Field(i)
		if structField.Anonymous {
			// Embedded structs contribute their promoted columns below.
			continue
		}
		if rel, ok := sch.Relationships.Relations[structField.Name]; ok {
			specs = append(specs, relationKey(rel.Name))
			continue
		}
		if field, ok := sch.FieldsByName[structField.Name]; ok && field.DBName != "" {
			specs = append(specs, field.DBName)
		}
	}
	// Columns promoted from embedded structs keep schema order at the end.
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		seen[spec.(string)] = struct{}{}
	}
	for _, field := range sch.Fields {
		if field.DBName == "" {
			continue
		}
		if _, ok := seen[field.DBName]; !ok {
			specs = append(specs, field.DBName)
		}
	}
	return specs
}
