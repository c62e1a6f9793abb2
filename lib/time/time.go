package time

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/railroad-think/rrtheme/lib/env"
)

var (
	isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	nonDigits     = regexp.MustCompile(`\D+`)
)

// ParseISODate reads the leading year, month, day, hour, minute and second groups of
// an ISO 8601 string in local time. Zones and fractions are ignored.
func ParseISODate(s string) (time.Time, error) {
	if !isoDatePrefix.MatchString(s) {
		return time.Time{}, fmt.Errorf("%q does not start with YYYY-MM-DD", s)
	}

	var parts [6]int
	for i, group := range nonDigits.Split(s, -1) {
		if i >= len(parts) {
			break
		}
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q: %w", s, err)
		}
		parts[i] = n
	}
	return time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, time.Local), nil
}

// WithTimeout returns context.WithTimeout(ctx, timeout) but timeout is overridden with RR_TIMEOUT if set
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	t := timeout
	if seconds, has := env.Timeout(); has {
		t = time.Duration(seconds) * time.Second
	}
	if t <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, t)
}
