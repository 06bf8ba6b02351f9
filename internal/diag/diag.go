// Package diag reports caller misuse without flooding the log.
package diag

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Reporter logs misuse at warning level through a token bucket. Reports
// over the budget are counted and the count is attached to the next report
// that gets through.
type Reporter struct {
	logger     *slog.Logger
	limiter    *rate.Limiter
	total      atomic.Int64
	suppressed atomic.Int64
}

// NewReporter allows burst reports at once and one more every interval.
func NewReporter(logger *slog.Logger, interval time.Duration, burst int) *Reporter {
	return &Reporter{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Report records one misuse and logs it if the budget allows.
// It returns true when the report was logged.
func (r *Reporter) Report(ctx context.Context, msg string, args ...any) bool {
	if r == nil {
		return false
	}
	r.total.Add(1)

	if !r.limiter.Allow() {
		r.suppressed.Add(1)
		return false
	}
	if n := r.suppressed.Swap(0); n > 0 {
		args = append(args, slog.Int64("suppressed", n))
	}
	r.logger.WarnContext(ctx, msg, args...)
	return true
}

// Total returns how many misuses were reported, logged or not.
func (r *Reporter) Total() int64 {
	if r == nil {
		return 0
	}
	return r.total.Load()
}
