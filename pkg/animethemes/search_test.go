package animethemes

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
	"anime": [
		{"id": 15, "name": "Bakemonogatari", "slug": "bakemonogatari", "year": 2009, "season": "Summer"}
	],
	"artists": [
		{"id": 31, "name": "supercell", "slug": "supercell"}
	],
	"themes": [
		{"id": 63, "type": "OP", "sequence": 1, "slug": "OP1"},
		{"id": 64, "type": "OP", "sequence": 2, "slug": "OP2"}
	],
	"songs": [
		{"id": 70, "title": "staple stable"}
	]
}`

func TestSearch(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(searchFixture))
	})

	res, err := c.Search(context.Background(), "Bakemonogatari")
	require.NoError(t, err)
	assert.Equal(t, "Bakemonogatari", gotQuery)

	require.NotEmpty(t, res.Anime)
	assert.Equal(t, "Bakemonogatari", res.Anime[0].Name)
	assert.Equal(t, "bakemonogatari", res.Anime[0].Slug)

	require.Len(t, res.Themes, 2)
	assert.Equal(t, "OP2", res.Themes[1].Slug)

	require.Len(t, res.Artists, 1)
	assert.Equal(t, "supercell", res.Artists[0].Name)
	assert.Empty(t, res.Videos)
}

func TestSearchOptions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "3", q.Get("limit"))
		assert.Equal(t, "anime,themes", q.Get("fields"))
		w.Write([]byte(`{}`))
	})

	_, err := c.Search(context.Background(), "monogatari", WithLimit(3), WithSearchFields("anime", "themes"))
	require.NoError(t, err)
}

func TestSearchEmptyQuery(t *testing.T) {
	c := New(WithRateLimit(nil))
	_, err := c.Search(context.Background(), "")
	require.Error(t, err)
}
