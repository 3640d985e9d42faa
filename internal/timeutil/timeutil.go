package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Date is an optional calendar value. The zero value is the absence marker.
type Date struct {
	t     time.Time
	valid bool
}

// Some wraps t as a present date.
func Some(t time.Time) Date {
	return Date{t: t, valid: true}
}

// None returns the absence marker.
func None() Date {
	return Date{}
}

// FromPtr maps a nil pointer to the absence marker.
func FromPtr(t *time.Time) Date {
	if t == nil {
		return None()
	}
	return Some(*t)
}

// Valid reports whether a date is present.
func (d Date) Valid() bool { return d.valid }

// Time returns the wrapped value and whether it was present.
func (d Date) Time() (time.Time, bool) { return d.t, d.valid }

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp.
// An empty value yields the absence marker.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return None(), nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return Some(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return Some(t), nil
	}
	return None(), fmt.Errorf("%w %q: expected YYYY-MM-DD or RFC 3339", ErrInvalidDate, value)
}

// FormatISO formats a time as YYYY-MM-DD in its current location.
func FormatISO(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDate renders date using pattern tokens (YYYY, MM, DD, HH, mm, ss).
// Everything else in pattern is copied verbatim. Absent dates render as "".
func FormatDate(date Date, pattern string) string {
	t, ok := date.Time()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.Grow(len(pattern) + 4)
	for i := 0; i < len(pattern); {
		tok, ok := matchToken(pattern[i:])
		if !ok {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		writePadded(&b, tok.field(t), tok.Width)
		i += len(tok.Text)
	}
	return b.String()
}

func writePadded(b *strings.Builder, value, width int) {
	if value < 0 {
		b.WriteByte('-')
		value = -value
	}
	digits := strconv.Itoa(value)
	for n := len(digits); n < width; n++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
}
