package animethemes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampFormats(t *testing.T) {
	cases := []struct {
		in   string
		year int
	}{
		{`"2020-09-27T16:23:09.000000Z"`, 2020},
		{`"2020-09-27T16:23:09Z"`, 2020},
		{`"2020-09-27 16:23:09"`, 2020},
		{`"2009-07-03"`, 2009},
	}

	for _, tc := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tc.in), &ts), tc.in)
		assert.Equal(t, tc.year, ts.Year(), tc.in)
	}
}

func TestTimestampNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestampInvalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &ts))
}

func TestTimestampRoundTrip(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2020-09-27T16:23:09Z"`), &ts))

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2020-09-27T16:23:09Z"`, string(out))
}
