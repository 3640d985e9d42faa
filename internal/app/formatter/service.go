package formatter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/datefmt-service/internal/domain"
	"github.com/preston-bernstein/datefmt-service/internal/logging"
	"github.com/preston-bernstein/datefmt-service/internal/metrics"
	"github.com/preston-bernstein/datefmt-service/internal/timeutil"
)

// Options bound what the Service accepts.
type Options struct {
	DefaultPattern   string
	MaxPatternLength int
	MaxBatchSize     int
}

// Service renders dates for the transport layers.
type Service struct {
	opts     Options
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service; zero options fall back to YYYY-MM-DD and no limits.
func NewService(opts Options, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if opts.DefaultPattern == "" {
		opts.DefaultPattern = "YYYY-MM-DD"
	}
	return &Service{
		opts:     opts,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// DefaultPattern returns the pattern used when a request omits one.
func (s *Service) DefaultPattern() string {
	return s.opts.DefaultPattern
}

// Format parses req.Date and renders it with req.Pattern.
// An empty date yields an empty Formatted value and no error.
func (s *Service) Format(req domain.FormatRequest) (domain.FormatResult, error) {
	start := s.now()
	pattern := req.Pattern
	if pattern == "" {
		pattern = s.opts.DefaultPattern
	}
	result := domain.FormatResult{Date: req.Date, Pattern: pattern}

	if err := s.checkPattern(pattern); err != nil {
		s.record(metrics.OutcomeInvalidPattern, start)
		return result, err
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		s.record(metrics.OutcomeInvalidDate, start)
		return result, fmt.Errorf("format: %w", err)
	}

	result.Formatted = timeutil.FormatDate(date, pattern)
	if date.Valid() {
		s.record(metrics.OutcomeOK, start)
	} else {
		s.record(metrics.OutcomeEmpty, start)
	}
	return result, nil
}

// FormatBatch formats every item; per-item failures are reported in Result.Error.
func (s *Service) FormatBatch(req domain.BatchRequest) (domain.BatchResponse, error) {
	if limit := s.opts.MaxBatchSize; limit > 0 && len(req.Items) > limit {
		return domain.BatchResponse{}, fmt.Errorf("%w: %d items (max %d)", ErrBatchTooLarge, len(req.Items), limit)
	}
	s.recorder.RecordBatch(len(req.Items))

	results := make([]domain.FormatResult, 0, len(req.Items))
	failed := 0
	for _, item := range req.Items {
		res, err := s.Format(item)
		if err != nil {
			res.Error = err.Error()
			failed++
		}
		results = append(results, res)
	}
	if failed > 0 {
		logging.Warn(s.logger, "batch items failed", logging.FieldCount, failed)
	}
	return domain.BatchResponse{Results: results}, nil
}

// Tokens reports how pattern is scanned.
func (s *Service) Tokens(pattern string) (domain.TokensResponse, error) {
	if pattern == "" {
		pattern = s.opts.DefaultPattern
	}
	if err := s.checkPattern(pattern); err != nil {
		return domain.TokensResponse{}, err
	}
	segs := timeutil.Tokenize(pattern)
	out := make([]domain.Segment, 0, len(segs))
	for _, seg := range segs {
		out = append(out, domain.Segment{Kind: string(seg.Kind), Text: seg.Text})
	}
	return domain.TokensResponse{
		Pattern:  pattern,
		Segments: out,
		Known:    timeutil.Tokens(),
	}, nil
}

func (s *Service) checkPattern(pattern string) error {
	if limit := s.opts.MaxPatternLength; limit > 0 && len(pattern) > limit {
		return &PatternError{Length: len(pattern), Max: limit}
	}
	return nil
}

func (s *Service) record(outcome string, start time.Time) {
	s.recorder.RecordFormat(outcome, s.now().Sub(start))
}
