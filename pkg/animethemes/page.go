package animethemes

// Meta describes the position of a page within an index listing.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Links holds the absolute pagination URLs of an index listing. Absent
// links (e.g. Next on the final page) are empty strings.
type Links struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

// pageInfo is embedded by every paged result type. It remembers the client
// that produced the page so follow-up requests reuse its configuration.
type pageInfo struct {
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`

	client *Client
}

// clientSetter is satisfied by paged results; the client attaches itself
// after decoding so pagination links can be followed.
type clientSetter interface {
	setClient(c *Client)
}

func (p *pageInfo) setClient(c *Client) {
	p.client = c
}

// HasNext reports whether another page follows this one.
func (p *pageInfo) HasNext() bool {
	return p.Links.Next != ""
}
