package animethemes

import (
	"strings"
	"time"
)

// Timestamp wraps time.Time to tolerate the two date formats the API has
// shipped over time: RFC 3339 with fractional seconds and a bare
// "2006-01-02 15:04:05" form.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}

	var err error
	for _, layout := range timestampLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return err
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Format(time.RFC3339), nil
}
