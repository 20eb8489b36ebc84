package animethemes

import (
	"context"
	"strconv"
)

// ExternalResource is a link from an anime or artist to an external site
// such as MyAnimeList, AniDB or an official page.
type ExternalResource struct {
	ID         int       `json:"id"`
	ExternalID int       `json:"external_id"`
	Link       string    `json:"link"`
	Site       string    `json:"site"`
	As         string    `json:"as"`
	CreatedAt  Timestamp `json:"created_at"`
	UpdatedAt  Timestamp `json:"updated_at"`

	Anime   []Anime  `json:"anime,omitempty"`
	Artists []Artist `json:"artists,omitempty"`
}

// ExternalResource returns the external resource identified by id.
func (c *Client) ExternalResource(ctx context.Context, id int, opts ...RequestOption) (*ExternalResource, error) {
	var r ExternalResource
	if err := c.get(ctx, "/resource/"+strconv.Itoa(id), buildQuery(opts), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ExternalResourcePage is one page of an external resource index listing.
type ExternalResourcePage struct {
	pageInfo
	Resources []ExternalResource `json:"resources"`
}

// ExternalResourceIndex lists external resources. Use
// WithFilter("site", "mal") and friends to constrain the listing.
func (c *Client) ExternalResourceIndex(ctx context.Context, opts ...RequestOption) (*ExternalResourcePage, error) {
	var p ExternalResourcePage
	if err := c.get(ctx, "/resource", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *ExternalResourcePage) Next(ctx context.Context) (*ExternalResourcePage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next ExternalResourcePage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
