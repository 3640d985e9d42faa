package formatter

import (
	"errors"
	"fmt"
)

// ErrBatchTooLarge is returned when a batch exceeds the configured size.
var ErrBatchTooLarge = errors.New("batch too large")

// PatternError reports a pattern rejected before formatting.
type PatternError struct {
	Length int
	Max    int
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern too long (length=%d, max=%d)", e.Length, e.Max)
}

// AsPatternError attempts to unwrap an error into a PatternError.
func AsPatternError(err error) (*PatternError, bool) {
	var pErr *PatternError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
