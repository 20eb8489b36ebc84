package animethemes

import (
	"context"
	"net/url"
)

// Series groups related anime under one franchise, e.g. "monogatari".
type Series struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	Anime []Anime `json:"anime,omitempty"`
}

// Series returns the series identified by slug.
func (c *Client) Series(ctx context.Context, slug string, opts ...RequestOption) (*Series, error) {
	var s Series
	if err := c.get(ctx, "/series/"+url.PathEscape(slug), buildQuery(opts), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SeriesPage is one page of a series index listing.
type SeriesPage struct {
	pageInfo
	Series []Series `json:"series"`
}

// SeriesIndex lists series.
func (c *Client) SeriesIndex(ctx context.Context, opts ...RequestOption) (*SeriesPage, error) {
	var p SeriesPage
	if err := c.get(ctx, "/series", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *SeriesPage) Next(ctx context.Context) (*SeriesPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next SeriesPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
