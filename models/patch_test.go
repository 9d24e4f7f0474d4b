package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestRunPatchColumnsAndMissing(t *testing.T) {
	var empty RunPatch
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, RequiredColumns, empty.Missing())

	p := RunPatch{
		Units:   ptr(Miles),
		Comment: ptr("hilly"),
	}
	assert.False(t, p.IsEmpty())
	assert.Equal(t, []string{"units", "comment"}, p.Columns())
	assert.Equal(t, []string{"rdate", "timeofday", "distance", "elapsed"}, p.Missing())
}

func TestRunPatchApply(t *testing.T) {
	run := Run{
		RunID:     3,
		RDate:     NewDate(2020, time.May, 5),
		TimeOfDay: PM,
		Distance:  decimal.RequireFromString("5"),
		Units:     Kilometers,
		Elapsed:   Elapsed(25 * time.Minute),
		Effort:    "hard",
		Comment:   "windy",
	}
	orig := run

	RunPatch{}.Apply(&run)
	assert.Equal(t, orig, run)

	RunPatch{Distance: ptr(decimal.RequireFromString("5.5")), Effort: ptr("")}.Apply(&run)
	assert.Equal(t, "5.5", run.Distance.String())
	assert.Equal(t, "", run.Effort)
	assert.Equal(t, orig.Comment, run.Comment)
	assert.Equal(t, orig.RDate, run.RDate)
	assert.Equal(t, orig.RunID, run.RunID)
}

func TestEnumerations(t *testing.T) {
	assert.True(t, ValidTimeOfDay("noon"))
	assert.False(t, ValidTimeOfDay("morning"))
	assert.True(t, ValidUnits("miles"))
	assert.False(t, ValidUnits("furlongs"))
	assert.False(t, ValidUnits("Miles"))
}
