package animethemes

import (
	"context"

	"github.com/pkg/errors"
)

// SearchResult holds the matches of one search call, grouped by resource
// type. Slices for types not covered by the query are empty.
type SearchResult struct {
	Anime     []Anime            `json:"anime"`
	Artists   []Artist           `json:"artists"`
	Themes    []Theme            `json:"themes"`
	Songs     []Song             `json:"songs"`
	Series    []Series           `json:"series"`
	Entries   []Entry            `json:"entries"`
	Synonyms  []Synonym          `json:"synonyms"`
	Videos    []Video            `json:"videos"`
	Resources []ExternalResource `json:"resources"`
}

// Search returns resources matching the query across all resource types.
// Use WithLimit to cap matches per type (1-5) and WithSearchFields to
// restrict the searched types.
func (c *Client) Search(ctx context.Context, query string, opts ...RequestOption) (*SearchResult, error) {
	if query == "" {
		return nil, errors.New("animethemes: search query must not be empty")
	}

	q := buildQuery(opts)
	q.Set("q", query)

	var res SearchResult
	if err := c.get(ctx, "/search", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
