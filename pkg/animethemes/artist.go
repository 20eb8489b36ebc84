package animethemes

import (
	"context"
	"net/url"
)

// Artist is a performer credited on one or more songs.
type Artist struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	Songs     []Song             `json:"songs,omitempty"`
	Members   []Artist           `json:"members,omitempty"`
	Groups    []Artist           `json:"groups,omitempty"`
	Resources []ExternalResource `json:"resources,omitempty"`
}

// Artist returns the artist identified by slug.
func (c *Client) Artist(ctx context.Context, slug string, opts ...RequestOption) (*Artist, error) {
	var a Artist
	if err := c.get(ctx, "/artist/"+url.PathEscape(slug), buildQuery(opts), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ArtistPage is one page of an artist index listing.
type ArtistPage struct {
	pageInfo
	Artists []Artist `json:"artists"`
}

// ArtistIndex lists artists.
func (c *Client) ArtistIndex(ctx context.Context, opts ...RequestOption) (*ArtistPage, error) {
	var p ArtistPage
	if err := c.get(ctx, "/artist", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *ArtistPage) Next(ctx context.Context) (*ArtistPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next ArtistPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
