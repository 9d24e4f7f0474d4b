package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the wire and storage format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component, held as midnight UTC.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date { return Date{d.Time.AddDate(0, 0, n)} }

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) { return d.String(), nil }

// Value stores the date as YYYY-MM-DD so both Postgres date columns and
// SQLite text columns compare correctly.
func (d Date) Value() (driver.Value, error) { return d.String(), nil }

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		return fmt.Errorf("models: cannot scan NULL into Date")
	default:
		return fmt.Errorf("models: cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Elapsed is how long a run took.
type Elapsed time.Duration

// Postgres renders intervals as "[N day[s] ]HH:MM:SS[.ffffff]"; clients may
// also send MM:SS.
var elapsedRE = regexp.MustCompile(`^(?:(\d+) days? )?(?:(\d+):)?(\d{1,2}):(\d{1,2})(?:\.(\d{1,9}))?$`)

// MaxElapsedSeconds is the longest Elapsed, in whole seconds, that fits a time.Duration.
const MaxElapsedSeconds = math.MaxInt64 / int64(time.Second)

// ErrElapsedRange is returned for durations that are negative or longer
// than MaxElapsedSeconds.
var ErrElapsedRange = errors.New("elapsed time out of range")

// ElapsedFromSeconds converts whole seconds, rejecting values outside
// 0..MaxElapsedSeconds.
func ElapsedFromSeconds(secs int64) (Elapsed, error) {
	if secs < 0 || secs > MaxElapsedSeconds {
		return 0, fmt.Errorf("%w: %d seconds", ErrElapsedRange, secs)
	}
	return Elapsed(time.Duration(secs) * time.Second), nil
}

// ParseElapsed parses a clock-style duration. Sub-second precision is dropped.
func ParseElapsed(s string) (Elapsed, error) {
	m := elapsedRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid elapsed time %q: expected HH:MM:SS", s)
	}

	var parts [4]int64
	for i, v := range m[1:5] {
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrElapsedRange, s)
		}
		parts[i] = n
	}
	days, hours, mins, secs := parts[0], parts[1], parts[2], parts[3]
	if mins >= 60 || secs >= 60 {
		return 0, fmt.Errorf("invalid elapsed time %q: minutes and seconds must be below 60", s)
	}
	if days > MaxElapsedSeconds/86400 || hours > MaxElapsedSeconds/3600 {
		return 0, fmt.Errorf("%w: %q", ErrElapsedRange, s)
	}
	return ElapsedFromSeconds(days*86400 + hours*3600 + mins*60 + secs)
}

// Duration returns e as a time.Duration.
func (e Elapsed) Duration() time.Duration { return time.Duration(e) }

// String renders e as zero-padded HH:MM:SS. Hours are not wrapped at 24.
func (e Elapsed) String() string {
	total := int64(time.Duration(e) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

func (e Elapsed) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *Elapsed) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseElapsed(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Elapsed) MarshalYAML() (interface{}, error) { return e.String(), nil }

func (e Elapsed) Value() (driver.Value, error) { return e.String(), nil }

func (e *Elapsed) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return e.scanText(v)
	case []byte:
		return e.scanText(string(v))
	case int64:
		parsed, err := ElapsedFromSeconds(v)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	case nil:
		return fmt.Errorf("models: cannot scan NULL into Elapsed")
	default:
		return fmt.Errorf("models: cannot scan %T into Elapsed", src)
	}
}

func (e *Elapsed) scanText(s string) error {
	parsed, err := ParseElapsed(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
