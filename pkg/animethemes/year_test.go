package animethemes

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYears(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/year", r.URL.Path)
		w.Write([]byte(`[1963, 2009, 2020]`))
	})

	years, err := c.Years(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1963, 2009, 2020}, years)
}

func TestYear(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/year/2009", r.URL.Path)
		w.Write([]byte(`{
			"winter": [{"id": 1, "name": "Winter Show", "slug": "winter-show"}],
			"spring": [],
			"summer": [{"id": 15, "name": "Bakemonogatari", "slug": "bakemonogatari"}],
			"fall": [{"id": 3, "name": "Fall Show", "slug": "fall-show"}],
			"": [{"id": 4, "name": "Seasonless OVA", "slug": "seasonless-ova"}]
		}`))
	})

	res, err := c.Year(context.Background(), 2009)
	require.NoError(t, err)

	require.Len(t, res.Summer, 1)
	assert.Equal(t, "Bakemonogatari", res.Summer[0].Name)
	assert.Len(t, res.Winter, 1)
	assert.Empty(t, res.Spring)
	assert.Len(t, res.Fall, 1)

	require.Len(t, res.NoSeason, 1)
	assert.Equal(t, "seasonless-ova", res.NoSeason[0].Slug)
}
