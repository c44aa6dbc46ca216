package classifier

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/shared/metrics"
	"mindscore-backend/internal/shared/telemetry"
)

const retryBaseDelay = 300 * time.Millisecond

type retrying struct {
	base  Classifier
	name  string
	delay time.Duration
}

// WithRetry retries base once after a short delay when the failure looks
// transient. A nil base stays nil.
func WithRetry(base Classifier, name string) Classifier {
	if base == nil {
		return nil
	}
	return retrying{base: base, name: name, delay: retryBaseDelay}
}

func (r retrying) Classify(ctx context.Context, input Input) (affect.Reading, error) {
	reading, err := r.base.Classify(ctx, input)
	if err == nil || !ShouldRetry(err) {
		return reading, err
	}

	metrics.IncClassifierRetry()
	telemetry.Warn("classifier retry", map[string]any{
		"classifier": r.name,
		"attempt":    1,
		"error":      err.Error(),
	})
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		return affect.Reading{}, ctx.Err()
	}

	return r.base.Classify(ctx, input)
}

// ShouldRetry reports whether err is worth a second attempt.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status >= 500 || statusErr.Status == 429
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof") {
		return true
	}
	return false
}

// StatusError reports a non-2xx response from a classifier service.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("classifier http status %d", e.Status)
	}
	return fmt.Sprintf("classifier http status %d: %s", e.Status, e.Body)
}
