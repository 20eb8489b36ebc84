package animethemes

import (
	"net/url"
	"strconv"
	"strings"
)

// RequestOption adds query parameters to a single API call. Options with
// empty values are dropped, matching how the API treats absent parameters.
type RequestOption func(url.Values)

// WithInclude requests related resources to be embedded in the response,
// e.g. "themes", "themes.song", "synonyms".
func WithInclude(relations ...string) RequestOption {
	return func(v url.Values) { setCSV(v, "include", relations) }
}

// WithFields limits the attributes returned for one resource type, encoded
// as fields[resource]=a,b.
func WithFields(resource string, fields ...string) RequestOption {
	return func(v url.Values) { setCSV(v, "fields["+resource+"]", fields) }
}

// WithFilter constrains an index listing, encoded as filter[key]=value.
// Known keys include year, season, type, sequence, group, nsfw, spoiler,
// version, resolution, source and site.
func WithFilter(key, value string) RequestOption {
	return func(v url.Values) {
		if value != "" {
			v.Set("filter["+key+"]", value)
		}
	}
}

// WithSort orders an index listing. Prefix a field with "-" for descending
// order.
func WithSort(fields ...string) RequestOption {
	return func(v url.Values) { setCSV(v, "sort", fields) }
}

// WithPage selects the page of an index listing, encoded as page[number].
func WithPage(n int) RequestOption {
	return func(v url.Values) {
		if n > 0 {
			v.Set("page[number]", strconv.Itoa(n))
		}
	}
}

// WithPerPage sets the page size of an index listing, encoded as page[size].
func WithPerPage(n int) RequestOption {
	return func(v url.Values) {
		if n > 0 {
			v.Set("page[size]", strconv.Itoa(n))
		}
	}
}

// WithLimit caps the number of matches per resource type in a search.
// The API accepts the range 1-5.
func WithLimit(n int) RequestOption {
	return func(v url.Values) {
		if n > 0 {
			v.Set("limit", strconv.Itoa(n))
		}
	}
}

// WithSearchFields restricts a search to the named resource types:
// anime, artists, entries, series, songs, synonyms, themes, videos.
func WithSearchFields(resources ...string) RequestOption {
	return func(v url.Values) { setCSV(v, "fields", resources) }
}

func buildQuery(opts []RequestOption) url.Values {
	v := url.Values{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func setCSV(v url.Values, key string, values []string) {
	filtered := values[:0:0]
	for _, val := range values {
		if val != "" {
			filtered = append(filtered, val)
		}
	}
	if len(filtered) > 0 {
		v.Set(key, strings.Join(filtered, ","))
	}
}
