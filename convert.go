package admin

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tomopy03/gorm-admin/fields"
	"gorm.io/gorm/schema"
)

var (
	timeGoType    = reflect.TypeOf(time.Time{})
	uuidGoType    = reflect.TypeOf(uuid.UUID{})
	decimalGoType = reflect.TypeOf(decimal.Decimal{})
	fileGoType    = reflect.TypeOf(fields.File{})
	filesGoType   = reflect.TypeOf(fields.Files{})
	imageGoType   = reflect.TypeOf(fields.Image{})
	imagesGoType  = reflect.TypeOf(fields.Images{})
)

func newStringField(n string) fields.Field   { return fields.NewStringField(n) }
func newTextAreaField(n string) fields.Field { return fields.NewTextAreaField(n) }
func newBooleanField(n string) fields.Field  { return fields.NewBooleanField(n) }
func newIntegerField(n string) fields.Field  { return fields.NewIntegerField(n) }
func newDecimalField(n string) fields.Field  { return fields.NewDecimalField(n) }
func newDateField(n string) fields.Field     { return fields.NewDateField(n) }
func newTimeField(n string) fields.Field     { return fields.NewTimeField(n) }
func newDateTimeField(n string) fields.Field { return fields.NewDateTimeField(n) }
func newJSONField(n string) fields.Field     { return fields.NewJSONField(n) }

// converters maps normalized column data types to field constructors. Go
// kinds the ORM resolves itself use the schema package's own data type
// names; the rest are raw column types reachable through `gorm:"type:..."`
// tags.
var converters = map[string]func(string) fields.Field{
	"string":   newStringField,
	"varchar":  newStringField,
	"nvarchar": newStringField,
	"char":     newStringField,

	"text":       newTextAreaField,
	"tinytext":   newTextAreaField,
	"mediumtext": newTextAreaField,
	"longtext":   newTextAreaField,
	"clob":       newTextAreaField,

	"bool":    newBooleanField,
	"boolean": newBooleanField,
	"bit":     newBooleanField,

	"int":       newIntegerField,
	"uint":      newIntegerField,
	"integer":   newIntegerField,
	"bigint":    newIntegerField,
	"smallint":  newIntegerField,
	"tinyint":   newIntegerField,
	"serial":    newIntegerField,
	"bigserial": newIntegerField,

	"float":   newDecimalField,
	"double":  newDecimalField,
	"real":    newDecimalField,
	"decimal": newDecimalField,
	"numeric": newDecimalField,
	"money":   newDecimalField,

	"bytes":     newTextAreaField,
	"blob":      newTextAreaField,
	"longblob":  newTextAreaField,
	"bytea":     newTextAreaField,
	"binary":    newTextAreaField,
	"varbinary": newTextAreaField,

	"json":  newJSONField,
	"jsonb": newJSONField,

	"uuid":    newStringField,
	"inet":    newStringField,
	"macaddr": newStringField,
	"cidr":    newStringField,
	"year":    newStringField,

	"date":        newDateField,
	"datetime":    newDateTimeField,
	"timestamp":   newDateTimeField,
	"timestamptz": newDateTimeField,
	"time":        newTimeField,
	"timetz":      newTimeField,
}

// ConvertField maps one schema field to an admin field descriptor. The
// descriptor key is the column name, so it round-trips through the query
// compiler unchanged.
func ConvertField(f *schema.Field) (fields.Field, error) {
	field, err := convertField(f)
	if err != nil {
		return nil, err
	}
	if tag := parseAdminTag(f); tag.Label != "" {
		field.Base().Label = tag.Label
	}
	return field, nil
}

func convertField(f *schema.Field) (fields.Field, error) {
	name := f.DBName

	if tag := parseAdminTag(f); tag.Type != "" {
		field := fieldForTagType(tag.Type, name)
		if field == nil {
			return nil, NotSupportedColumnError{Column: f.Name, Type: tag.Type}
		}
		return field, nil
	}

	if choices, coerce, ok := enumChoices(f.IndirectFieldType); ok {
		return fields.NewEnumField(name, choices, coerce), nil
	}

	switch f.IndirectFieldType {
	case fileGoType:
		return fields.NewFileField(name), nil
	case filesGoType:
		field := fields.NewFileField(name)
		field.Multiple = true
		return field, nil
	case imageGoType:
		return fields.NewImageField(name), nil
	case imagesGoType:
		field := fields.NewImageField(name)
		field.Multiple = true
		return field, nil
	case uuidGoType:
		return fields.NewStringField(name), nil
	case decimalGoType:
		return fields.NewDecimalField(name), nil
	case timeGoType:
		return temporalField(f, name), nil
	}

	if t := f.IndirectFieldType; t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		elem := t.Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		switch elem.Kind() {
		case reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fields.NewTagsField(name), nil
		}
		// Multidimensional and struct element arrays have no admin rendering.
		return nil, NotSupportedColumnError{Column: f.Name, Type: t.String()}
	}

	if f.DataType == schema.Time {
		return temporalField(f, name), nil
	}
	if ctor, ok := converters[normalizeDataType(f.DataType)]; ok {
		return ctor(name), nil
	}
	return nil, NotSupportedColumnError{Column: f.Name, Type: string(f.DataType)}
}

// temporalField picks between date, time-of-day and datetime based on the
// declared column type; plain time.Time columns are datetimes.
func temporalField(f *schema.Field, name string) fields.Field {
	raw, _, _ := strings.Cut(strings.ToLower(f.TagSettings["TYPE"]), "(")
	switch raw {
	case "date":
		return fields.NewDateField(name)
	case "time", "timetz":
		return fields.NewTimeField(name)
	default:
		return fields.NewDateTimeField(name)
	}
}

// enumChoices reports whether the column's Go type enumerates its values.
func enumChoices(t reflect.Type) ([]fields.Choice, fields.CoerceKind, bool) {
	if t == nil {
		return nil, "", false
	}
	for _, v := range []reflect.Value{reflect.New(t).Elem(), reflect.New(t)} {
		e, ok := v.Interface().(fields.Enumerated)
		if !ok {
			continue
		}
		coerce := fields.CoerceString
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			coerce = fields.CoerceInteger
		}
		return e.AdminEnumChoices(), coerce, true
	}
	return nil, "", false
}

func normalizeDataType(dt schema.DataType) string {
	base, _, _ := strings.Cut(strings.ToLower(string(dt)), "(")
	return strings.TrimSpace(base)
}

// adminTag carries per-column overrides from the `admin` struct tag:
// `admin:"-"` hides the column, `admin:"type:email"` forces the field
// kind, `admin:"label:Customer name"` overrides the display label.
type adminTag struct {
	Skip  bool
	Type  string
	Label string
}

func parseAdminTag(f *schema.Field) adminTag {
	var tag adminTag
	raw, ok := f.Tag.Lookup("admin")
	if !ok {
		return tag
	}
	if raw == "-" {
		tag.Skip = true
		return tag
	}
	for _, part := range strings.Split(raw, ";") {
		key, value, _ := strings.Cut(part, ":")
		switch strings.TrimSpace(key) {
		case "type":
			tag.Type = strings.TrimSpace(value)
		case "label":
			tag.Label = strings.TrimSpace(value)
		}
	}
	return tag
}

func fieldForTagType(kind, name string) fields.Field {
	switch kind {
	case "email":
		return fields.NewEmailField(name)
	case "url":
		return fields.NewURLField(name)
	case "string":
		return fields.NewStringField(name)
	case "textarea":
		return fields.NewTextAreaField(name)
	case "json":
		return fields.NewJSONField(name)
	case "tags":
		return fields.NewTagsField(name)
	case "file":
		return fields.NewFileField(name)
	case "image":
		return fields.NewImageField(name)
	case "date":
		return fields.NewDateField(name)
	case "time":
		return fields.NewTimeField(name)
	case "datetime":
		return fields.NewDateTimeField(name)
	case "integer":
		return fields.NewIntegerField(name)
	case "decimal":
		return fields.NewDecimalField(name)
	case "boolean":
		return fields.NewBooleanField(name)
	default:
		return nil
	}
}
