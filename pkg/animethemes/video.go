package animethemes

import (
	"context"
	"net/url"
)

// Video is an encoded file of a theme entry hosted by AnimeThemes.
type Video struct {
	ID         int       `json:"id"`
	Basename   string    `json:"basename"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	Resolution int       `json:"resolution"`
	NC         bool      `json:"nc"`
	Subbed     bool      `json:"subbed"`
	Lyrics     bool      `json:"lyrics"`
	Uncen      bool      `json:"uncen"`
	Source     string    `json:"source"`
	Overlap    string    `json:"overlap"`
	Link       string    `json:"link"`
	CreatedAt  Timestamp `json:"created_at"`
	UpdatedAt  Timestamp `json:"updated_at"`

	Entries []Entry `json:"entries,omitempty"`
}

// Video returns the video identified by basename, e.g.
// "Bakemonogatari-OP1.webm".
func (c *Client) Video(ctx context.Context, basename string, opts ...RequestOption) (*Video, error) {
	var v Video
	if err := c.get(ctx, "/video/"+url.PathEscape(basename), buildQuery(opts), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// VideoPage is one page of a video index listing.
type VideoPage struct {
	pageInfo
	Videos []Video `json:"videos"`
}

// VideoIndex lists videos. Use WithFilter("resolution", ...),
// WithFilter("source", ...) or WithFilter("overlap", ...) to constrain the
// listing.
func (c *Client) VideoIndex(ctx context.Context, opts ...RequestOption) (*VideoPage, error) {
	var p VideoPage
	if err := c.get(ctx, "/video", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *VideoPage) Next(ctx context.Context) (*VideoPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next VideoPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
