package query

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"
)

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
	timeType    = reflect.TypeOf(time.Time{})
)

// Layouts accepted for temporal operands, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

// coerceValue converts a JSON-decoded operand into the Go type of the
// target column, so the driver binds a typed value instead of a raw
// string or float64.
func (b *Builder) coerceValue(field *schema.Field, op string, value any) (any, error) {
	if !b.coerce || value == nil {
		return value, nil
	}

	switch field.IndirectFieldType {
	case timeType:
		return b.coerceTime(op, value)
	case uuidType:
		if s, ok := value.(string); ok {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, MalformedValueError{Operator: op, Reason: fmt.Sprintf("invalid uuid %q", s)}
			}
			return id, nil
		}
		return value, nil
	case decimalType:
		switch v := value.(type) {
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, MalformedValueError{Operator: op, Reason: fmt.Sprintf("invalid decimal %q", v)}
			}
			return d, nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		}
		return value, nil
	}

	switch field.DataType {
	case schema.Time:
		return b.coerceTime(op, value)
	case schema.Int, schema.Uint:
		// JSON decodes every number as float64.
		if f, ok := value.(float64); ok && f == float64(int64(f)) {
			return int64(f), nil
		}
		return value, nil
	}

	return value, nil
}

func (b *Builder) coerceTime(op string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, MalformedValueError{Operator: op, Reason: fmt.Sprintf("invalid timestamp %q", s)}
}
