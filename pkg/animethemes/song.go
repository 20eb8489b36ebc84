package animethemes

import (
	"context"
	"strconv"
)

// Song is the musical piece behind one or more themes.
type Song struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	Themes  []Theme  `json:"themes,omitempty"`
	Artists []Artist `json:"artists,omitempty"`
}

// Song returns the song identified by id.
func (c *Client) Song(ctx context.Context, id int, opts ...RequestOption) (*Song, error) {
	var s Song
	if err := c.get(ctx, "/song/"+strconv.Itoa(id), buildQuery(opts), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SongPage is one page of a song index listing.
type SongPage struct {
	pageInfo
	Songs []Song `json:"songs"`
}

// SongIndex lists songs.
func (c *Client) SongIndex(ctx context.Context, opts ...RequestOption) (*SongPage, error) {
	var p SongPage
	if err := c.get(ctx, "/song", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *SongPage) Next(ctx context.Context) (*SongPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next SongPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
