// Package validate turns request payloads into run patches. Every field is
// checked and all problems are reported together.
package validate

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/padraicbc/runlog/models"
)

// ValidationError maps field names to the reason each was rejected.
// Problems with the payload as a whole are reported under "body".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid run: " + strings.Join(parts, "; ")
}

func bodyError(reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{"body": reason}}
}

// ParseAndValidate parses a JSON object into a RunPatch. With partial false
// every required field must be present; with partial true any subset is
// accepted and absent fields stay nil.
func ParseAndValidate(raw []byte, partial bool) (models.RunPatch, error) {
	var p models.RunPatch

	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return p, bodyError("request body is required")
	}
	if !gjson.ValidBytes(body) {
		return p, bodyError("malformed JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return p, bodyError("expected a JSON object")
	}

	errs := map[string]string{}
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		var err error
		switch name {
		case "runid":
			err = fmt.Errorf("is assigned by the server and cannot be set")
		case "rdate":
			p.RDate, err = parseDate(value)
		case "timeofday":
			p.TimeOfDay, err = parseEnum(value, models.AllTimesOfDay)
		case "distance":
			p.Distance, err = parseDistance(value)
		case "units":
			p.Units, err = parseEnum(value, models.AllUnits)
		case "elapsed":
			p.Elapsed, err = parseElapsed(value)
		case "effort":
			p.Effort, err = parseText(value)
		case "comment":
			p.Comment, err = parseText(value)
		default:
			err = fmt.Errorf("unknown field")
		}
		if err != nil {
			errs[name] = err.Error()
		}
		return true
	})

	if !partial {
		for _, col := range p.Missing() {
			if _, seen := errs[col]; !seen {
				errs[col] = "is required"
			}
		}
	}

	if len(errs) > 0 {
		return models.RunPatch{}, &ValidationError{Fields: errs}
	}
	return p, nil
}

func parseDate(v gjson.Result) (*models.Date, error) {
	if v.Type != gjson.String {
		return nil, fmt.Errorf("must be a date string (YYYY-MM-DD)")
	}
	d, err := models.ParseDate(v.Str)
	if err != nil {
		return nil, fmt.Errorf("must be a date string (YYYY-MM-DD)")
	}
	return &d, nil
}

func parseEnum(v gjson.Result, allowed []string) (*string, error) {
	if v.Type == gjson.String {
		for _, a := range allowed {
			if v.Str == a {
				s := v.Str
				return &s, nil
			}
		}
	}
	return nil, fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
}

func parseDistance(v gjson.Result) (*decimal.Decimal, error) {
	var text string
	switch v.Type {
	case gjson.Number:
		// Raw keeps the literal digits; v.Num is already a float64.
		text = v.Raw
	case gjson.String:
		text = strings.TrimSpace(v.Str)
	default:
		return nil, fmt.Errorf("must be a decimal number")
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("must be a decimal number")
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("must not be negative")
	}
	return &d, nil
}

func parseElapsed(v gjson.Result) (*models.Elapsed, error) {
	switch v.Type {
	case gjson.String:
		e, err := models.ParseElapsed(strings.TrimSpace(v.Str))
		if errors.Is(err, models.ErrElapsedRange) {
			return nil, fmt.Errorf("out of range")
		}
		if err != nil {
			return nil, fmt.Errorf("must be a duration as HH:MM:SS")
		}
		return &e, nil
	case gjson.Number:
		if strings.HasPrefix(v.Raw, "-") {
			return nil, fmt.Errorf("must not be negative")
		}
		secs, err := strconv.ParseInt(v.Raw, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("out of range")
		}
		if err != nil {
			return nil, fmt.Errorf("must be whole seconds or HH:MM:SS")
		}
		e, err := models.ElapsedFromSeconds(secs)
		if err != nil {
			return nil, fmt.Errorf("out of range")
		}
		return &e, nil
	default:
		return nil, fmt.Errorf("must be a duration as HH:MM:SS")
	}
}

func parseText(v gjson.Result) (*string, error) {
	switch v.Type {
	case gjson.String:
		s := v.Str
		return &s, nil
	case gjson.Null:
		s := ""
		return &s, nil
	default:
		return nil, fmt.Errorf("must be a string")
	}
}
