package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/runlog/models"
)

const validRun = `{
	"rdate": "2020-06-01",
	"timeofday": "pm",
	"distance": 3.20,
	"units": "km",
	"elapsed": "00:18:05"
}`

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve.Fields
}

func TestFullPayload(t *testing.T) {
	p, err := ParseAndValidate([]byte(validRun), false)
	require.NoError(t, err)

	assert.Equal(t, "2020-06-01", p.RDate.String())
	assert.Equal(t, models.PM, *p.TimeOfDay)
	assert.Equal(t, "3.2", p.Distance.String())
	assert.Equal(t, "3.20", p.Distance.StringFixed(2))
	assert.Equal(t, models.Kilometers, *p.Units)
	assert.Equal(t, "00:18:05", p.Elapsed.String())
	assert.Nil(t, p.Effort)
	assert.Nil(t, p.Comment)
}

func TestDistanceKeepsExactDigits(t *testing.T) {
	p, err := ParseAndValidate([]byte(`{"distance": 0.1000000000000000055511151231257827}`), true)
	require.NoError(t, err)
	assert.Equal(t, "0.1000000000000000055511151231257827", p.Distance.String())

	p, err = ParseAndValidate([]byte(`{"distance": "12.345"}`), true)
	require.NoError(t, err)
	assert.Equal(t, "12.345", p.Distance.String())
}

func TestMissingRequiredFields(t *testing.T) {
	_, err := ParseAndValidate([]byte(`{"rdate": "2020-06-01", "comment": "x"}`), false)
	fields := fieldErrors(t, err)
	assert.Equal(t, map[string]string{
		"timeofday": "is required",
		"distance":  "is required",
		"units":     "is required",
		"elapsed":   "is required",
	}, fields)
}

func TestEnumerationsRejected(t *testing.T) {
	payload := `{"rdate": "2020-06-01", "timeofday": "morning", "distance": 1, "units": "furlongs", "elapsed": "00:10:00"}`

	for _, partial := range []bool{false, true} {
		_, err := ParseAndValidate([]byte(payload), partial)
		fields := fieldErrors(t, err)
		assert.Len(t, fields, 2)
		assert.Equal(t, "must be one of am, pm, noon", fields["timeofday"])
		assert.Equal(t, "must be one of m, km, miles", fields["units"])
	}

	_, err := ParseAndValidate([]byte(`{"timeofday": "morning"}`), true)
	assert.Contains(t, fieldErrors(t, err), "timeofday")
}

func TestAllProblemsReportedTogether(t *testing.T) {
	_, err := ParseAndValidate([]byte(`{
		"runid": 4,
		"rdate": "06/01/2020",
		"timeofday": 1,
		"distance": -2,
		"units": null,
		"elapsed": "forever",
		"effort": 7,
		"pace": "fast"
	}`), false)

	fields := fieldErrors(t, err)
	assert.Equal(t, map[string]string{
		"runid":     "is assigned by the server and cannot be set",
		"rdate":     "must be a date string (YYYY-MM-DD)",
		"timeofday": "must be one of am, pm, noon",
		"distance":  "must not be negative",
		"units":     "must be one of m, km, miles",
		"elapsed":   "must be a duration as HH:MM:SS",
		"effort":    "must be a string",
		"pace":      "unknown field",
	}, fields)
	assert.Contains(t, err.Error(), "distance: must not be negative")
}

func TestPartialPayload(t *testing.T) {
	p, err := ParseAndValidate([]byte(`{}`), true)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())

	p, err = ParseAndValidate([]byte(`{"comment": null, "elapsed": 3725}`), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"elapsed", "comment"}, p.Columns())
	assert.Equal(t, "", *p.Comment)
	assert.Equal(t, "01:02:05", p.Elapsed.String())
}

func TestElapsedNumberRules(t *testing.T) {
	_, err := ParseAndValidate([]byte(`{"elapsed": -5}`), true)
	assert.Equal(t, "must not be negative", fieldErrors(t, err)["elapsed"])

	_, err = ParseAndValidate([]byte(`{"elapsed": 12.5}`), true)
	assert.Equal(t, "must be whole seconds or HH:MM:SS", fieldErrors(t, err)["elapsed"])

	for _, body := range []string{
		`{"elapsed": 9223372036854775807}`,
		`{"elapsed": 99999999999999999999}`,
		`{"elapsed": "3000000:00:00"}`,
		`{"elapsed": "99999999999999999999:00:00"}`,
	} {
		_, err = ParseAndValidate([]byte(body), true)
		assert.Equal(t, "out of range", fieldErrors(t, err)["elapsed"], body)
	}

	p, err := ParseAndValidate([]byte(`{"elapsed": 9223372036}`), true)
	require.NoError(t, err)
	assert.Equal(t, "2562047:47:16", p.Elapsed.String())
}

func TestBadBodies(t *testing.T) {
	for name, body := range map[string]string{
		"empty":     "",
		"spaces":    "   ",
		"malformed": `{"rdate": `,
		"array":     `[1, 2]`,
		"scalar":    `"run"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAndValidate([]byte(body), false)
			assert.Contains(t, fieldErrors(t, err), "body")
		})
	}
}
