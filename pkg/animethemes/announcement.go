package animethemes

import (
	"context"
	"strconv"
)

// Announcement is a site-wide notice published by the AnimeThemes staff.
type Announcement struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// Announcement returns the announcement identified by id.
func (c *Client) Announcement(ctx context.Context, id int, opts ...RequestOption) (*Announcement, error) {
	var a Announcement
	if err := c.get(ctx, "/announcement/"+strconv.Itoa(id), buildQuery(opts), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AnnouncementPage is one page of an announcement index listing.
type AnnouncementPage struct {
	pageInfo
	Announcements []Announcement `json:"announcements"`
}

// AnnouncementIndex lists announcements.
func (c *Client) AnnouncementIndex(ctx context.Context, opts ...RequestOption) (*AnnouncementPage, error) {
	var p AnnouncementPage
	if err := c.get(ctx, "/announcement", buildQuery(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the following page, or nil when this is the last one.
func (p *AnnouncementPage) Next(ctx context.Context) (*AnnouncementPage, error) {
	if !p.HasNext() {
		return nil, nil
	}
	var next AnnouncementPage
	if err := p.client.FollowLink(ctx, p.Links.Next, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
