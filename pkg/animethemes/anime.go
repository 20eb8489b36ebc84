package animethemes

import (
	"context"
	"net/url"
)

// Anime is a single show or movie tracked by AnimeThemes.
type Anime struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Year      int       `json:"year"`
	Season    string    `json:"season"`
	Synopsis  string    `json:"synopsis"`
	Cover     string    `json:"cover"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	// Populated when requested via WithInclude.
	Synonyms  []Synonym          `json:"synonyms,omitempty"`
	Themes    []Theme            `json:"themes,omitempty"`
	Series    []Series           `json:"series,omitempty"`
	Resources []ExternalResource `json:"resources,omitempty"`
}

// Anime returns the anime identified by slug.
func (c *Client) Anime(ctx context.Context, slug string, opts ...RequestOption) (*Anime, error) {
	var a Anime
	if err := c.get(ctx, "/anime/"+url.PathEscape(slug), buildQuery(opts), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AnimePage is one page of an anime index listing.
type AnimePage struct {
	pageInfo
	Anime []Anime `json:"anime"`
}

// AnimeIndex lists anime. Use WithFilter("year", ...) and
// WithFilter("season", ...) to constrain the listing, WithPage and
// WithPerPage to page through it.
func (c *Client) AnimeIndex(ctx context.Context, opts ...RequestOption) (*AnimePage, error) {
	var p AnimePage
	if err := c.get(ctx, "/anime", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *AnimePage) Next(ctx context.Context) (*AnimePage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next AnimePage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
