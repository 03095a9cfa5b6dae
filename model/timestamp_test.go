package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 5, 1, 12, 0, 0, 500*int(time.Millisecond), time.UTC))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1714564800.5", string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, ts.Equal(back.Time))
}

func TestTimestamp_UnmarshalString(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T12:00:00Z"`), &ts))
	assert.Equal(t, "2024-05-01T12:00:00Z", ts.String())
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"ontem"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`true`), &ts))
}

func TestTimestamp_SubMillisecondRoundTrip(t *testing.T) {
	started := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 123456*int(time.Microsecond), time.UTC))
	run := (&JobRun{}).WithId("a")
	run.StartedOn = started

	b, err := json.Marshal(run)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id":"a","StartedOn":1704067200.123456}`, string(b))

	var back JobRun
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, run.Equal(&back))
	assert.Equal(t, run.Hash(), back.Hash())
}

func TestTimestamp_Epoch(t *testing.T) {
	cases := []struct {
		wire string
		want time.Time
	}{
		{"0", time.Unix(0, 0)},
		{"1704067200", time.Unix(1704067200, 0)},
		{"1704067200.000000001", time.Unix(1704067200, 1)},
		{"-1.5", time.Unix(-2, 500*int64(time.Millisecond))},
		{"1.7040672E9", time.Unix(1704067200, 0)},
	}
	for _, tc := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tc.wire), &ts), tc.wire)
		assert.True(t, tc.want.Equal(ts.Time), tc.wire)

		if !strings.ContainsAny(tc.wire, "eE") {
			b, err := json.Marshal(ts)
			require.NoError(t, err)
			assert.Equal(t, tc.wire, string(b))
		}
	}
}
