package animethemes

import (
	"context"
	"strconv"
)

// Theme is one opening or ending sequence of an anime. Slug is the short
// form shown on the site, e.g. "OP2" or "ED1".
type Theme struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Sequence  int       `json:"sequence"`
	Group     string    `json:"group"`
	Slug      string    `json:"slug"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	Anime   *Anime  `json:"anime,omitempty"`
	Song    *Song   `json:"song,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

// Theme returns the theme identified by id.
func (c *Client) Theme(ctx context.Context, id int, opts ...RequestOption) (*Theme, error) {
	var t Theme
	if err := c.get(ctx, "/theme/"+strconv.Itoa(id), buildQuery(opts), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ThemePage is one page of a theme index listing.
type ThemePage struct {
	pageInfo
	Themes []Theme `json:"themes"`
}

// ThemeIndex lists themes. Use WithFilter("type", "OP") or
// WithFilter("group", ...) to constrain the listing.
func (c *Client) ThemeIndex(ctx context.Context, opts ...RequestOption) (*ThemePage, error) {
	var p ThemePage
	if err := c.get(ctx, "/theme", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *ThemePage) Next(ctx context.Context) (*ThemePage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next ThemePage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
