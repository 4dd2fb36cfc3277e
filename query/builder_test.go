package query

import (
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type player struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:120"`
	Age       int
	Balance   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Banned    bool
	CreatedAt time.Time
	DeletedBy *string
}

var testSchemaCache = &sync.Map{}

func parseTestSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse(&player{}, testSchemaCache, schema.NamingStrategy{})
	require.NoError(t, err)
	return sch
}

// newDryRunDB opens a gorm session over a mocked postgres connection so
// expressions can be rendered to SQL without a database.
func newDryRunDB(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mockDB
}

func renderSQL(t *testing.T, expr clause.Expression) string {
	t.Helper()
	db, mockDB := newDryRunDB(t)
	defer mockDB.Close()

	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&player{}).
			Clauses(clause.Where{Exprs: []clause.Expression{expr}}).
			Find(&[]player{})
	})
}

func TestBuilder_Build_Operators(t *testing.T) {
	builder := NewBuilder(parseTestSchema(t))

	tests := []struct {
		name  string
		where Where
		want  []string
	}{
		{
			name:  "eq",
			where: Where{"name": map[string]any{"eq": "alice"}},
			want:  []string{`"name" = 'alice'`},
		},
		{
			name:  "eq null renders IS NULL",
			where: Where{"deleted_by": map[string]any{"eq": nil}},
			want:  []string{`"deleted_by" IS NULL`},
		},
		{
			name:  "neq null renders IS NOT NULL",
			where: Where{"deleted_by": map[string]any{"neq": nil}},
			want:  []string{`"deleted_by" IS NOT NULL`},
		},
		{
			name:  "scalar shorthand is equality",
			where: Where{"name": "bob"},
			want:  []string{`"name" = 'bob'`},
		},
		{
			name:  "comparisons",
			where: Where{"age": map[string]any{"ge": float64(21), "lt": float64(65)}},
			want:  []string{`"age" >= 21`, `"age" < 65`, ` AND `},
		},
		{
			name:  "between",
			where: Where{"age": map[string]any{"between": []any{float64(18), float64(30)}}},
			want:  []string{`"age" BETWEEN 18 AND 30`},
		},
		{
			name:  "not_between",
			where: Where{"age": map[string]any{"not_between": []any{float64(18), float64(30)}}},
			want:  []string{`NOT`, `"age" BETWEEN 18 AND 30`},
		},
		{
			name:  "in",
			where: Where{"name": map[string]any{"in": []any{"a", "b"}}},
			want:  []string{`"name" IN ('a','b')`},
		},
		{
			name:  "not_in",
			where: Where{"name": map[string]any{"not_in": []any{"a", "b"}}},
			want:  []string{`"name" NOT IN ('a','b')`},
		},
		{
			name:  "contains",
			where: Where{"name": map[string]any{"contains": "li"}},
			want:  []string{`"name" LIKE '%li%'`},
		},
		{
			name:  "startsWith",
			where: Where{"name": map[string]any{"startsWith": "al"}},
			want:  []string{`"name" LIKE 'al%'`},
		},
		{
			name:  "endsWith",
			where: Where{"name": map[string]any{"endsWith": "ce"}},
			want:  []string{`"name" LIKE '%ce'`},
		},
		{
			name:  "not negates the inner operator map",
			where: Where{"name": map[string]any{"not": map[string]any{"startsWith": "a"}}},
			want:  []string{`NOT LIKE 'a%'`},
		},
		{
			name: "or combinator",
			where: Where{"or": []any{
				map[string]any{"name": map[string]any{"eq": "alice"}},
				map[string]any{"age": map[string]any{"gt": float64(30)}},
			}},
			want: []string{`"name" = 'alice'`, ` OR `, `"age" > 30`},
		},
		{
			name: "and combinator",
			where: Where{"and": []any{
				map[string]any{"banned": map[string]any{"eq": false}},
				map[string]any{"age": map[string]any{"le": float64(40)}},
			}},
			want: []string{`"banned" = false`, ` AND `, `"age" <= 40`},
		},
		{
			name:  "field keys resolve by struct name too",
			where: Where{"Name": map[string]any{"eq": "alice"}},
			want:  []string{`"name" = 'alice'`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := builder.Build(tt.where)
			require.NoError(t, err)
			require.NotNil(t, expr)

			sql := renderSQL(t, expr)
			for _, fragment := range tt.want {
				assert.Contains(t, sql, fragment)
			}
		})
	}
}

func TestBuilder_Build_Coercion(t *testing.T) {
	builder := NewBuilder(parseTestSchema(t))

	t.Run("timestamps parse to time values", func(t *testing.T) {
		expr, err := builder.Build(Where{"created_at": map[string]any{"ge": "2024-03-01T00:00:00Z"}})
		require.NoError(t, err)
		sql := renderSQL(t, expr)
		assert.Contains(t, sql, `"created_at" >= `)
		assert.Contains(t, sql, `2024-03-01`)
	})

	t.Run("integer operands lose the JSON float shape", func(t *testing.T) {
		expr, err := builder.Build(Where{"age": map[string]any{"eq": float64(42)}})
		require.NoError(t, err)
		assert.Contains(t, renderSQL(t, expr), `"age" = 42`)
	})

	t.Run("invalid uuid operand", func(t *testing.T) {
		_, err := builder.Build(Where{"id": map[string]any{"eq": "not-a-uuid"}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "eq", malformed.Operator)
	})

	t.Run("invalid decimal operand", func(t *testing.T) {
		_, err := builder.Build(Where{"balance": map[string]any{"gt": "12.x"}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("invalid timestamp operand", func(t *testing.T) {
		_, err := builder.Build(Where{"created_at": map[string]any{"lt": "yesterday"}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("coercion can be disabled", func(t *testing.T) {
		raw := NewBuilder(parseTestSchema(t), WithoutCoercion())
		expr, err := raw.Build(Where{"id": map[string]any{"eq": "not-a-uuid"}})
		require.NoError(t, err)
		assert.Contains(t, renderSQL(t, expr), `"id" = 'not-a-uuid'`)
	})
}

func TestBuilder_Build_EmptyOperatorMap(t *testing.T) {
	builder := NewBuilder(parseTestSchema(t))

	t.Run("constrains nothing next to a real predicate", func(t *testing.T) {
		expr, err := builder.Build(Where{"name": map[string]any{}, "age": map[string]any{"eq": float64(1)}})
		require.NoError(t, err)
		require.NotNil(t, expr)

		sql := renderSQL(t, expr)
		assert.Contains(t, sql, `"age" = 1`)
		assert.NotContains(t, sql, `"name"`)
	})

	t.Run("alone compiles to nil", func(t *testing.T) {
		expr, err := builder.Build(Where{"name": map[string]any{}})
		require.NoError(t, err)
		assert.Nil(t, expr)
	})

	t.Run("negated empty map compiles to nil", func(t *testing.T) {
		expr, err := builder.Build(Where{"name": map[string]any{"not": map[string]any{}}})
		require.NoError(t, err)
		assert.Nil(t, expr)
	})

	t.Run("combinator over empty sub-filters compiles to nil", func(t *testing.T) {
		expr, err := builder.Build(Where{"or": []any{
			map[string]any{"name": map[string]any{}},
		}})
		require.NoError(t, err)
		assert.Nil(t, expr)
	})
}

func TestBuilder_Build_Errors(t *testing.T) {
	builder := NewBuilder(parseTestSchema(t))

	t.Run("unknown field", func(t *testing.T) {
		_, err := builder.Build(Where{"nope": map[string]any{"eq": 1}})
		var unknown UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "nope", unknown.Field)
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := builder.Build(Where{"name": map[string]any{"matches": "x"}})
		var unknown UnknownOperatorError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "matches", unknown.Operator)
	})

	t.Run("between needs two bounds", func(t *testing.T) {
		_, err := builder.Build(Where{"age": map[string]any{"between": []any{float64(1)}}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "between", malformed.Operator)
	})

	t.Run("in needs a list", func(t *testing.T) {
		_, err := builder.Build(Where{"age": map[string]any{"in": float64(3)}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("contains needs a string", func(t *testing.T) {
		_, err := builder.Build(Where{"name": map[string]any{"contains": float64(3)}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("combinator needs a list", func(t *testing.T) {
		_, err := builder.Build(Where{"or": map[string]any{"name": "x"}})
		var malformed MalformedValueError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("disallowed column", func(t *testing.T) {
		restricted := NewBuilder(parseTestSchema(t), WithAllowedColumns("name"))
		_, err := restricted.Build(Where{"age": map[string]any{"eq": float64(1)}})
		var notAllowed ColumnNotAllowedError
		require.ErrorAs(t, err, &notAllowed)

		_, err = restricted.Build(Where{"name": map[string]any{"eq": "ok"}})
		require.NoError(t, err)
	})

	t.Run("empty allow list denies every column", func(t *testing.T) {
		denied := NewBuilder(parseTestSchema(t), WithAllowedColumns())
		_, err := denied.Build(Where{"name": "x"})
		var notAllowed ColumnNotAllowedError
		require.ErrorAs(t, err, &notAllowed)
	})

	t.Run("empty descriptor compiles to nil", func(t *testing.T) {
		expr, err := builder.Build(nil)
		require.NoError(t, err)
		assert.Nil(t, expr)

		expr, err = builder.Build(Where{})
		require.NoError(t, err)
		assert.Nil(t, expr)
	})
}

func TestBuilder_ColumnTable(t *testing.T) {
	builder := NewBuilder(parseTestSchema(t), WithColumnTable("players"))
	expr, err := builder.Build(Where{"name": map[string]any{"eq": "alice"}})
	require.NoError(t, err)
	assert.Contains(t, renderSQL(t, expr), `"players"."name" = 'alice'`)
}

func TestErrorsMatchWithErrorsIs(t *testing.T) {
	builder := NewBuilder(parseTestSchema(t))
	_, err := builder.Build(Where{"nope": "x"})
	assert.True(t, errors.Is(err, UnknownFieldError{Field: "nope"}))
}
