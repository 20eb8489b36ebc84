package animethemes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	v := buildQuery([]RequestOption{
		WithInclude("themes", "themes.song"),
		WithFields("anime", "name", "slug"),
		WithFilter("year", "2009"),
		WithSort("-created_at", "name"),
		WithPage(3),
		WithPerPage(25),
	})

	assert.Equal(t, "themes,themes.song", v.Get("include"))
	assert.Equal(t, "name,slug", v.Get("fields[anime]"))
	assert.Equal(t, "2009", v.Get("filter[year]"))
	assert.Equal(t, "-created_at,name", v.Get("sort"))
	assert.Equal(t, "3", v.Get("page[number]"))
	assert.Equal(t, "25", v.Get("page[size]"))
}

func TestBuildQuerySkipsEmptyValues(t *testing.T) {
	v := buildQuery([]RequestOption{
		WithInclude(),
		WithInclude(""),
		WithFilter("season", ""),
		WithPage(0),
		WithLimit(0),
	})

	assert.Empty(t, v, "empty values must not be encoded")
}

func TestBuildQueryDropsBlankCSVEntries(t *testing.T) {
	v := buildQuery([]RequestOption{
		WithInclude("themes", "", "synonyms"),
	})

	assert.Equal(t, "themes,synonyms", v.Get("include"))
}
