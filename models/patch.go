package models

import "github.com/shopspring/decimal"

// RunPatch carries a set of run fields where a nil pointer means the field
// was not supplied. It is used both for creates (all required fields set)
// and partial updates.
type RunPatch struct {
	RDate     *Date
	TimeOfDay *string
	Distance  *decimal.Decimal
	Units     *string
	Elapsed   *Elapsed
	Effort    *string
	Comment   *string
}

// RequiredColumns are the columns a create must supply.
var RequiredColumns = []string{"rdate", "timeofday", "distance", "units", "elapsed"}

// Columns returns the column names of the supplied fields, in table order.
func (p RunPatch) Columns() []string {
	var cols []string
	if p.RDate != nil {
		cols = append(cols, "rdate")
	}
	if p.TimeOfDay != nil {
		cols = append(cols, "timeofday")
	}
	if p.Distance != nil {
		cols = append(cols, "distance")
	}
	if p.Units != nil {
		cols = append(cols, "units")
	}
	if p.Elapsed != nil {
		cols = append(cols, "elapsed")
	}
	if p.Effort != nil {
		cols = append(cols, "effort")
	}
	if p.Comment != nil {
		cols = append(cols, "comment")
	}
	return cols
}

// Missing returns the required columns that p does not supply.
func (p RunPatch) Missing() []string {
	present := map[string]bool{}
	for _, c := range p.Columns() {
		present[c] = true
	}
	var out []string
	for _, c := range RequiredColumns {
		if !present[c] {
			out = append(out, c)
		}
	}
	return out
}

// IsEmpty reports whether no field is supplied.
func (p RunPatch) IsEmpty() bool { return len(p.Columns()) == 0 }

// Apply copies the supplied fields onto r and leaves the rest untouched.
func (p RunPatch) Apply(r *Run) {
	if p.RDate != nil {
		r.RDate = *p.RDate
	}
	if p.TimeOfDay != nil {
		r.TimeOfDay = *p.TimeOfDay
	}
	if p.Distance != nil {
		r.Distance = *p.Distance
	}
	if p.Units != nil {
		r.Units = *p.Units
	}
	if p.Elapsed != nil {
		r.Elapsed = *p.Elapsed
	}
	if p.Effort != nil {
		r.Effort = *p.Effort
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}
