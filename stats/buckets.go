package stats

import "github.com/shopspring/decimal"

type bucket struct {
	upper decimal.Decimal
	label string
}

// Upper bounds are inclusive; the first matching bucket wins.
var buckets = []bucket{
	{decimal.NewFromInt(1), "1 mile or less"},
	{decimal.NewFromInt(3), "1 - 3 miles"},
	{decimal.NewFromInt(5), "3 - 5 miles"},
	{decimal.NewFromInt(10), "5 - 10 miles"},
	{decimal.NewFromInt(15), "10 - 15 miles"},
	{decimal.NewFromInt(20), "15 - 20 miles"},
	{decimal.NewFromInt(25), "20 - 25 miles"},
}

const overLabel = "over 25 miles"

// BucketLabel names the distance range that miles falls in.
func BucketLabel(miles decimal.Decimal) string {
	for _, b := range buckets {
		if miles.LessThanOrEqual(b.upper) {
			return b.label
		}
	}
	return overLabel
}
