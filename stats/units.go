package stats

import (
	"github.com/shopspring/decimal"

	"github.com/padraicbc/runlog/models"
)

type unitPair struct{ from, to string }

// conversions is reference data: multiply a distance in from-units by the
// factor to get to-units. It is never written after init.
var conversions = map[unitPair]decimal.Decimal{
	{models.Meters, models.Miles}:     decimal.RequireFromString("0.000621371"),
	{models.Kilometers, models.Miles}: decimal.RequireFromString("0.621371"),
	{models.Miles, models.Miles}:      decimal.NewFromInt(1),

	{models.Meters, models.Kilometers}:     decimal.RequireFromString("0.001"),
	{models.Kilometers, models.Kilometers}: decimal.NewFromInt(1),
	{models.Miles, models.Kilometers}:      decimal.RequireFromString("1.609344"),

	{models.Meters, models.Meters}:     decimal.NewFromInt(1),
	{models.Kilometers, models.Meters}: decimal.NewFromInt(1000),
	{models.Miles, models.Meters}:      decimal.RequireFromString("1609.344"),
}

// Factor returns the multiplier converting from into to. ok is false when
// the pair is not in the table.
func Factor(from, to string) (f decimal.Decimal, ok bool) {
	f, ok = conversions[unitPair{from, to}]
	return f, ok
}

// Convert expresses distance (in from-units) in to-units.
func Convert(distance decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	f, ok := Factor(from, to)
	if !ok {
		return decimal.Zero, false
	}
	return distance.Mul(f), true
}
