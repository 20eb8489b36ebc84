package animethemes

import (
	"context"
	"strconv"
)

// Entry is one versioned airing of a theme, carrying the episode range it
// was used for and content flags.
type Entry struct {
	ID        int       `json:"id"`
	Version   int       `json:"version"`
	Episodes  string    `json:"episodes"`
	NSFW      bool      `json:"nsfw"`
	Spoiler   bool      `json:"spoiler"`
	Notes     string    `json:"notes"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	Theme  *Theme  `json:"theme,omitempty"`
	Videos []Video `json:"videos,omitempty"`
}

// Entry returns the entry identified by id.
func (c *Client) Entry(ctx context.Context, id int, opts ...RequestOption) (*Entry, error) {
	var e Entry
	if err := c.get(ctx, "/entry/"+strconv.Itoa(id), buildQuery(opts), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// EntryPage is one page of an entry index listing.
type EntryPage struct {
	pageInfo
	Entries []Entry `json:"entries"`
}

// EntryIndex lists entries. Use WithFilter("nsfw", ...) or
// WithFilter("spoiler", ...) to constrain the listing.
func (c *Client) EntryIndex(ctx context.Context, opts ...RequestOption) (*EntryPage, error) {
	var p EntryPage
	if err := c.get(ctx, "/entry", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *EntryPage) Next(ctx context.Context) (*EntryPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next EntryPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
