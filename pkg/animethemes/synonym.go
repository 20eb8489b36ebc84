package animethemes

import (
	"context"
	"strconv"
)

// Synonym is an alternative title of an anime.
type Synonym struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	Anime *Anime `json:"anime,omitempty"`
}

// Synonym returns the synonym identified by id.
func (c *Client) Synonym(ctx context.Context, id int, opts ...RequestOption) (*Synonym, error) {
	var s Synonym
	if err := c.get(ctx, "/synonym/"+strconv.Itoa(id), buildQuery(opts), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SynonymPage is one page of a synonym index listing.
type SynonymPage struct {
	pageInfo
	Synonyms []Synonym `json:"synonyms"`
}

// SynonymIndex lists synonyms.
func (c *Client) SynonymIndex(ctx context.Context, opts ...RequestOption) (*SynonymPage, error) {
	var p SynonymPage
	if err := c.get(ctx, "/synonym", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *SynonymPage) Next(ctx context.Context) (*SynonymPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next SynonymPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
