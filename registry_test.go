package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAdmin_AddView(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	site := New(WithLogger(zap.New(core)))

	authors, err := NewModelView(&Author{})
	require.NoError(t, err)
	articles, err := NewModelView(&Article{})
	require.NoError(t, err)

	require.NoError(t, site.AddView(authors))
	require.NoError(t, site.AddView(articles))

	t.Run("duplicate identity is rejected", func(t *testing.T) {
		dup, err := NewModelView(&Author{})
		require.NoError(t, err)
		err = site.AddView(dup)
		var dupErr DuplicateViewError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "author", dupErr.Identity)
	})

	t.Run("lookup by identity", func(t *testing.T) {
		view, ok := site.View("article")
		require.True(t, ok)
		assert.Equal(t, "Article", view.Label())

		_, ok = site.View("ghost")
		assert.False(t, ok)
	})

	t.Run("views keep registration order", func(t *testing.T) {
		views := site.Views()
		require.Len(t, views, 2)
		assert.Equal(t, "author", views[0].Identity())
		assert.Equal(t, "article", views[1].Identity())
	})

	t.Run("registrations are logged", func(t *testing.T) {
		entries := logs.FilterMessage("registered admin view").All()
		require.Len(t, entries, 2)
		assert.Equal(t, "author", entries[0].ContextMap()["identity"])
	})
}
