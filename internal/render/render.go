// Package render formats API results for terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/varoOP/go-animethemes/internal/domain"
	"github.com/varoOP/go-animethemes/pkg/animethemes"
)

// Renderer writes results in one of the supported output formats.
type Renderer struct {
	out    io.Writer
	format domain.OutputFormat
}

func NewRenderer(out io.Writer, format domain.OutputFormat) *Renderer {
	return &Renderer{out: out, format: format}
}

// Render writes v to the renderer's output. Text output uses a compact
// human-readable summary per result type; JSON and YAML marshal the value
// as-is.
func (r *Renderer) Render(v interface{}) error {
	switch r.format {
	case domain.OutputJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding json")
	case domain.OutputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = r.out.Write(b)
		return err
	default:
		_, err := io.WriteString(r.out, r.text(v))
		return err
	}
}

func (r *Renderer) text(v interface{}) string {
	var b strings.Builder

	switch res := v.(type) {
	case *animethemes.SearchResult:
		writeSearchResult(&b, res)
	case *animethemes.Anime:
		writeAnime(&b, res)
	case *animethemes.Artist:
		writeArtist(&b, res)
	case *animethemes.Theme:
		writeTheme(&b, res)
	case *animethemes.SeasonResult:
		writeSeasons(&b, res)
	case []int:
		for _, year := range res {
			fmt.Fprintf(&b, "%d\n", year)
		}
	default:
		// No dedicated summary, fall back to indented JSON.
		j, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%+v\n", v)
		}
		b.Write(j)
		b.WriteByte('\n')
	}

	return b.String()
}

func writeSearchResult(b *strings.Builder, res *animethemes.SearchResult) {
	if len(res.Anime) > 0 {
		b.WriteString("Anime:\n")
		for _, a := range res.Anime {
			fmt.Fprintf(b, "  %s (%s", a.Name, a.Slug)
			if a.Year > 0 {
				fmt.Fprintf(b, ", %d", a.Year)
			}
			b.WriteString(")\n")
		}
	}
	if len(res.Themes) > 0 {
		b.WriteString("Themes:\n")
		for _, t := range res.Themes {
			fmt.Fprintf(b, "  %s", t.Slug)
			if t.Song != nil && t.Song.Title != "" {
				fmt.Fprintf(b, " - %s", t.Song.Title)
			}
			if t.Anime != nil {
				fmt.Fprintf(b, " (%s)", t.Anime.Name)
			}
			b.WriteByte('\n')
		}
	}
	if len(res.Artists) > 0 {
		b.WriteString("Artists:\n")
		for _, a := range res.Artists {
			fmt.Fprintf(b, "  %s (%s)\n", a.Name, a.Slug)
		}
	}
	if len(res.Songs) > 0 {
		b.WriteString("Songs:\n")
		for _, s := range res.Songs {
			fmt.Fprintf(b, "  %s\n", s.Title)
		}
	}
	if len(res.Series) > 0 {
		b.WriteString("Series:\n")
		for _, s := range res.Series {
			fmt.Fprintf(b, "  %s (%s)\n", s.Name, s.Slug)
		}
	}
	if b.Len() == 0 {
		b.WriteString("No results.\n")
	}
}

func writeAnime(b *strings.Builder, a *animethemes.Anime) {
	fmt.Fprintf(b, "%s (%s)\n", a.Name, a.Slug)
	if a.Year > 0 {
		fmt.Fprintf(b, "Season: %s %d\n", a.Season, a.Year)
	}
	if a.Synopsis != "" {
		fmt.Fprintf(b, "Synopsis: %s\n", a.Synopsis)
	}
	if len(a.Synonyms) > 0 {
		names := make([]string, len(a.Synonyms))
		for i, s := range a.Synonyms {
			names[i] = s.Text
		}
		fmt.Fprintf(b, "Also known as: %s\n", strings.Join(names, ", "))
	}
	if len(a.Themes) > 0 {
		b.WriteString("Themes:\n")
		for _, t := range a.Themes {
			fmt.Fprintf(b, "  %s", t.Slug)
			if t.Song != nil && t.Song.Title != "" {
				fmt.Fprintf(b, " - %s", t.Song.Title)
			}
			b.WriteByte('\n')
		}
	}
}

func writeArtist(b *strings.Builder, a *animethemes.Artist) {
	fmt.Fprintf(b, "%s (%s)\n", a.Name, a.Slug)
	if len(a.Songs) > 0 {
		b.WriteString("Songs:\n")
		for _, s := range a.Songs {
			fmt.Fprintf(b, "  %s\n", s.Title)
		}
	}
	if len(a.Members) > 0 {
		b.WriteString("Members:\n")
		for _, m := range a.Members {
			fmt.Fprintf(b, "  %s\n", m.Name)
		}
	}
}

func writeTheme(b *strings.Builder, t *animethemes.Theme) {
	fmt.Fprintf(b, "%s", t.Slug)
	if t.Anime != nil {
		fmt.Fprintf(b, " (%s)", t.Anime.Name)
	}
	b.WriteByte('\n')
	if t.Song != nil && t.Song.Title != "" {
		fmt.Fprintf(b, "Song: %s\n", t.Song.Title)
		if len(t.Song.Artists) > 0 {
			names := make([]string, len(t.Song.Artists))
			for i, a := range t.Song.Artists {
				names[i] = a.Name
			}
			fmt.Fprintf(b, "Artists: %s\n", strings.Join(names, ", "))
		}
	}
	for _, e := range t.Entries {
		fmt.Fprintf(b, "Entry v%d", e.Version)
		if e.Episodes != "" {
			fmt.Fprintf(b, " (episodes %s)", e.Episodes)
		}
		b.WriteByte('\n')
	}
}

func writeSeasons(b *strings.Builder, res *animethemes.SeasonResult) {
	seasons := []struct {
		name  string
		anime []animethemes.Anime
	}{
		{"Winter", res.Winter},
		{"Spring", res.Spring},
		{"Summer", res.Summer},
		{"Fall", res.Fall},
		{"No season", res.NoSeason},
	}

	for _, s := range seasons {
		if len(s.anime) == 0 {
			continue
		}
		fmt.Fprintf(b, "%s:\n", s.name)
		for _, a := range s.anime {
			fmt.Fprintf(b, "  %s (%s)\n", a.Name, a.Slug)
		}
	}
	if b.Len() == 0 {
		b.WriteString("No results.\n")
	}
}
