package animethemes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page[number]")
		switch page {
		case "", "1":
			fmt.Fprintf(w, `{
				"artists": [{"id": 1, "name": "supercell", "slug": "supercell"}],
				"meta": {"current_page": 1, "per_page": 1, "from": 1, "to": 1},
				"links": {"next": "%s/artist?page[number]=2"}
			}`, srv.URL)
		case "2":
			fmt.Fprint(w, `{
				"artists": [{"id": 2, "name": "ClariS", "slug": "claris"}],
				"meta": {"current_page": 2, "per_page": 1, "from": 2, "to": 2},
				"links": {}
			}`)
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))
	t.Cleanup(srv.Close)

	c := New(WithBaseURL(srv.URL), WithRateLimit(nil))

	first, err := c.ArtistIndex(context.Background(), WithPerPage(1))
	require.NoError(t, err)
	require.Len(t, first.Artists, 1)
	assert.Equal(t, "supercell", first.Artists[0].Name)
	require.True(t, first.HasNext())

	second, err := first.Next(context.Background())
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Len(t, second.Artists, 1)
	assert.Equal(t, "ClariS", second.Artists[0].Name)
	assert.Equal(t, 2, second.Meta.CurrentPage)

	// Last page has no next link.
	third, err := second.Next(context.Background())
	require.NoError(t, err)
	assert.Nil(t, third)
}

func TestFollowLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/theme", r.URL.Path)
		fmt.Fprint(w, `{"themes": [{"id": 63, "slug": "OP1"}], "meta": {"current_page": 5}, "links": {}}`)
	}))
	t.Cleanup(srv.Close)

	c := New(WithBaseURL(srv.URL), WithRateLimit(nil))

	var p ThemePage
	err := c.FollowLink(context.Background(), srv.URL+"/theme?page[number]=5", &p)
	require.NoError(t, err)
	require.Len(t, p.Themes, 1)
	assert.Equal(t, 5, p.Meta.CurrentPage)

	// The decoded page is usable for further navigation.
	next, err := p.Next(context.Background())
	require.NoError(t, err)
	assert.Nil(t, next)
}
