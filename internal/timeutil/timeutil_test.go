package timeutil

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) Date {
	return Some(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		date    Date
		pattern string
		want    string
	}{
		{"slash separated", day(2023, 9, 15), "YYYY/MM/DD", "2023/09/15"},
		{"absent date", None(), "YYYY-MM-DD", ""},
		{"zero padded month and day", day(2023, 1, 5), "YYYY-MM-DD", "2023-01-05"},
		{"token order", day(2023, 9, 15), "DD/MM/YYYY", "15/09/2023"},
		{"compact", day(2024, 2, 29), "YYYYMMDD", "20240229"},
		{"small year padded", day(12, 3, 4), "YYYY", "0012"},
		{"empty pattern", day(2023, 9, 15), "", ""},
		{"literal only", day(2023, 9, 15), "date:", "date:"},
		{"unknown runs pass through", day(2023, 9, 15), "YY-M-D Q", "YY-M-D Q"},
		{"five Ys", day(2023, 9, 15), "YYYYY", "2023Y"},
		{"three Ms", day(2023, 9, 15), "MMM", "09M"},
		{"multibyte literals", day(2023, 9, 15), "DD · MM → YYYY", "15 · 09 → 2023"},
		{
			"time of day",
			Some(time.Date(2023, 9, 15, 7, 4, 9, 0, time.UTC)),
			"YYYY-MM-DD HH:mm:ss",
			"2023-09-15 07:04:09",
		},
		{"lowercase mm is minutes", day(2023, 9, 15), "mm", "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.date, tt.pattern); got != tt.want {
				t.Fatalf("FormatDate(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatDateAbsentIgnoresPattern(t *testing.T) {
	for _, pattern := range []string{"", "YYYY", "literal", "DD/MM/YYYY HH:mm:ss"} {
		if got := FormatDate(None(), pattern); got != "" {
			t.Fatalf("expected empty output for %q, got %q", pattern, got)
		}
	}
	var zero Date
	if got := FormatDate(zero, "YYYY"); got != "" {
		t.Fatalf("expected zero Date to be absent, got %q", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(Some(value), "YYYY-MM-DD HH"); got != "2024-01-02 23" {
		t.Fatalf("expected fields from the value's own location, got %s", got)
	}
}

func TestFormatDateNegativeYear(t *testing.T) {
	if got := FormatDate(day(-44, 3, 15), "YYYY"); got != "-0044" {
		t.Fatalf("expected signed padded year, got %s", got)
	}
}

func TestFormatDateIsDeterministic(t *testing.T) {
	d := day(2023, 9, 15)
	want := FormatDate(d, "YYYY/MM/DD")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := FormatDate(d, "YYYY/MM/DD"); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		}()
	}
	wg.Wait()
}

func TestFromPtr(t *testing.T) {
	if FromPtr(nil).Valid() {
		t.Fatal("expected nil pointer to be absent")
	}
	now := time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)
	d := FromPtr(&now)
	got, ok := d.Time()
	if !ok || !got.Equal(now) {
		t.Fatalf("expected wrapped time, got %v (%v)", got, ok)
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed, "YYYY-MM-DD"); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	parsed, err := ParseDate("2023-09-15T10:20:30Z")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed, "HH:mm:ss"); got != "10:20:30" {
		t.Fatalf("unexpected time fields %s", got)
	}
}

func TestParseDateEmptyIsAbsent(t *testing.T) {
	parsed, err := ParseDate("  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Valid() {
		t.Fatal("expected absent date")
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, value := range []string{"not-a-date", "2023-13-01", "2023-02-30", "15/09/2023"} {
		_, err := ParseDate(value)
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", value, err)
		}
	}
}

func TestFormatISOUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatISO(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}
