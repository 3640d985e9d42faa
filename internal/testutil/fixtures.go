package testutil

import (
	"time"

	"github.com/preston-bernstein/datefmt-service/internal/domain"
	"github.com/preston-bernstein/datefmt-service/internal/timeutil"
)

// Day returns a present date at UTC midnight.
func Day(year int, month time.Month, day int) timeutil.Date {
	return timeutil.Some(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// SampleRequests returns the canonical format scenarios with their expected output.
func SampleRequests() map[domain.FormatRequest]string {
	return map[domain.FormatRequest]string{
		{Date: "2023-09-15", Pattern: "YYYY/MM/DD"}: "2023/09/15",
		{Date: "", Pattern: "YYYY-MM-DD"}:           "",
		{Date: "2023-01-05", Pattern: "YYYY-MM-DD"}: "2023-01-05",
		{Date: "2023-09-15", Pattern: "DD/MM/YYYY"}: "15/09/2023",
	}
}
