// Package businessday resolves calendar dates into the UTC instant windows used to
// filter the day's transactions. All business records are stored in UTC, but the
// operating day runs midnight to midnight in the shop's fixed UTC-5 offset, regardless
// of where the service itself runs.
package businessday

import (
	"fmt"
	"time"
)

// BusinessOffsetSeconds is the fixed business offset (UTC-5). It is a business
// constant, not the host timezone, and carries no daylight-saving adjustment.
const BusinessOffsetSeconds = -5 * 60 * 60

// Location is the fixed-offset location used for all day-boundary arithmetic.
var Location = time.FixedZone("UTC-5", BusinessOffsetSeconds)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a civil calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string into a Date.
// A string that is not a valid calendar date is a hard failure for the caller.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf extracts the civil date from t, discarding any time-of-day component.
// The instant's own year/month/day fields are taken as-is.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in the business offset.
func Today() Date {
	return DateOf(time.Now().In(Location))
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid calendar date %s: expected quoted string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// AddDays returns the date n days after d. Month and year rollover is handled by
// calendar arithmetic via time.Date normalization.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Window returns the UTC instant pair [start, end] covering the operating day:
// start is local 00:00:00.000 and end is local 23:59:59.999 under the fixed
// business offset. Both boundaries are inclusive when filtering records.
func (d Date) Window() (start, end time.Time) {
	start = time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, Location).UTC()
	end = time.Date(d.Year, d.Month, d.Day, 23, 59, 59, 999_000_000, Location).UTC()
	return start, end
}
