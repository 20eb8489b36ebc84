package animethemes

import (
	"context"
	"encoding/json"
	"strconv"
)

// SeasonResult lists the anime of one year grouped by airing season.
// Anime without a season land in NoSeason (the API keys them under an
// empty string).
type SeasonResult struct {
	Winter   []Anime
	Spring   []Anime
	Summer   []Anime
	Fall     []Anime
	NoSeason []Anime
}

func (s *SeasonResult) UnmarshalJSON(b []byte) error {
	var raw map[string][]Anime
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.Winter = raw["winter"]
	s.Spring = raw["spring"]
	s.Summer = raw["summer"]
	s.Fall = raw["fall"]
	s.NoSeason = raw[""]
	return nil
}

// Years returns the years for which the API has anime, in the order the
// API reports them.
func (c *Client) Years(ctx context.Context) ([]int, error) {
	var years []int
	if err := c.get(ctx, "/year", nil, &years); err != nil {
		return nil, err
	}
	return years, nil
}

// Year returns the anime of the given year grouped by season.
func (c *Client) Year(ctx context.Context, year int, opts ...RequestOption) (*SeasonResult, error) {
	var res SeasonResult
	if err := c.get(ctx, "/year/"+strconv.Itoa(year), buildQuery(opts), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
