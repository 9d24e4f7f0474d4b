package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElapsed(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"00:00:00", 0},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"25:30", 25*time.Minute + 30*time.Second},
		{"26:00:00", 26 * time.Hour},
		{"1 day 02:00:00", 26 * time.Hour},
		{"2 days 00:00:01", 48*time.Hour + time.Second},
		{"00:41:12.500000", 41*time.Minute + 12*time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseElapsed(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Duration())
		})
	}
}

func TestParseElapsed_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-01:00:00", "01:60:00", "00:00:75", "1h30m", "12"} {
		_, err := ParseElapsed(in)
		assert.Error(t, err, in)
	}

	for _, in := range []string{
		"3000000:00:00",
		"99999999999999999999:00:00",
		"106752 days 00:00:00",
		"2562047:47:17",
	} {
		_, err := ParseElapsed(in)
		assert.ErrorIs(t, err, ErrElapsedRange, in)
	}

	longest, err := ParseElapsed("2562047:47:16")
	require.NoError(t, err)
	assert.Equal(t, "2562047:47:16", longest.String())
}

func TestElapsedFromSeconds(t *testing.T) {
	e, err := ElapsedFromSeconds(MaxElapsedSeconds)
	require.NoError(t, err)
	assert.True(t, e.Duration() > 0)

	for _, secs := range []int64{-1, MaxElapsedSeconds + 1, math.MaxInt64} {
		_, err := ElapsedFromSeconds(secs)
		assert.ErrorIs(t, err, ErrElapsedRange, secs)
	}
}

func TestElapsedString(t *testing.T) {
	assert.Equal(t, "00:00:00", Elapsed(0).String())
	assert.Equal(t, "00:05:09", Elapsed(5*time.Minute+9*time.Second).String())
	assert.Equal(t, "101:00:01", Elapsed(101*time.Hour+time.Second).String())
}

func TestElapsedScan(t *testing.T) {
	var e Elapsed
	require.NoError(t, e.Scan([]byte("1 day 00:00:10")))
	assert.Equal(t, "24:00:10", e.String())

	require.NoError(t, e.Scan(int64(90)))
	assert.Equal(t, "00:01:30", e.String())

	assert.Error(t, e.Scan(nil))
	assert.Error(t, e.Scan(3.5))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2021-03-04", d.String())

	require.NoError(t, d.Scan("2020-02-29"))
	assert.Equal(t, NewDate(2020, time.February, 29), d)

	require.NoError(t, d.Scan([]byte("2019-12-31 00:00:00+00:00")))
	assert.Equal(t, "2019-12-31", d.String())

	assert.Error(t, d.Scan("31/12/2019"))
	assert.Error(t, d.Scan(nil))
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	assert.Equal(t, "2024-02-29", d.AddDays(-1).String())
	assert.Equal(t, "2024-02-23", d.AddDays(-7).String())
}

func TestRunJSON(t *testing.T) {
	var run Run
	require.NoError(t, json.Unmarshal([]byte(`{
		"runid": 7, "rdate": "2020-06-01", "timeofday": "am",
		"distance": "3.20", "units": "km", "elapsed": "00:18:05",
		"effort": "easy", "comment": ""
	}`), &run))

	assert.Equal(t, int64(7), run.RunID)
	assert.Equal(t, "3.2", run.Distance.String())

	out, err := json.Marshal(run)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"runid": 7, "rdate": "2020-06-01", "timeofday": "am",
		"distance": "3.2", "units": "km", "elapsed": "00:18:05",
		"effort": "easy", "comment": ""
	}`, string(out))
}
