package models

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Times of day a run can be logged under.
const (
	AM   = "am"
	PM   = "pm"
	Noon = "noon"
)

// Distance units accepted on a run.
const (
	Meters     = "m"
	Kilometers = "km"
	Miles      = "miles"
)

var (
	AllTimesOfDay = []string{AM, PM, Noon}
	AllUnits      = []string{Meters, Kilometers, Miles}
)

// ValidTimeOfDay reports whether s is one of AllTimesOfDay.
func ValidTimeOfDay(s string) bool { return slices.Contains(AllTimesOfDay, s) }

// ValidUnits reports whether s is one of AllUnits.
func ValidUnits(s string) bool { return slices.Contains(AllUnits, s) }

// Run is a single logged run. RunID is assigned by the database on insert.
type Run struct {
	bun.BaseModel `bun:"table:runs,alias:r"`

	RunID     int64           `bun:"runid,pk,autoincrement" json:"runid"`
	RDate     Date            `bun:"rdate,notnull,type:date" json:"rdate"`
	TimeOfDay string          `bun:"timeofday,notnull" json:"timeofday"`
	Distance  decimal.Decimal `bun:"distance,notnull,type:numeric" json:"distance"`
	Units     string          `bun:"units,notnull" json:"units"`
	Elapsed   Elapsed         `bun:"elapsed,notnull,type:interval" json:"elapsed"`
	Effort    string          `bun:"effort,notnull" json:"effort"`
	Comment   string          `bun:"comment,notnull" json:"comment"`
}
