package admin

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/tomopy03/gorm-admin/fields"
)

func TestSlugifyModelName(t *testing.T) {
	cases := map[string]string{
		"Author":         "author",
		"SalesOrderLine": "sales-order-line",
		"APIKey":         "a-p-i-key",
		"user":           "user",
		"":               "",
	}
	for name, want := range cases {
		assert.Equal(t, want, SlugifyModelName(name), "name %q", name)
	}
}

func TestExtractFieldGoType(t *testing.T) {
	sch := parseTestSchema(t, &Article{})

	assert.Equal(t, reflect.TypeOf(""), ExtractFieldGoType(sch.LookUpField("title")))
	assert.Equal(t, reflect.TypeOf(int64(0)), ExtractFieldGoType(sch.LookUpField("views")))

	t.Run("nil field falls back to string", func(t *testing.T) {
		assert.Equal(t, reflect.TypeOf(""), ExtractFieldGoType(nil))
	})
}

func TestNormalizeList(t *testing.T) {
	keys, err := NormalizeList([]any{
		"title",
		fields.NewIntegerField("views"),
		clause.Column{Name: "rating"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "views", "rating"}, keys)

	t.Run("nil stays nil", func(t *testing.T) {
		keys, err := NormalizeList(nil)
		require.NoError(t, err)
		assert.Nil(t, keys)
	})

	t.Run("unsupported entry type", func(t *testing.T) {
		_, err := NormalizeList([]any{42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "int")
	})
}

func TestNormalizeFields_BadSpec(t *testing.T) {
	sch := parseTestSchema(t, &Article{})

	_, err := NormalizeFields([]any{3.14}, sch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "float64")
}
