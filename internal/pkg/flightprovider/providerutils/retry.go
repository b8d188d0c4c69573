package providerutils

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultBackoff is the base of the exponential backoff between attempts.
const DefaultBackoff = 200 * time.Millisecond

// Backoff returns the wait after the given zero-based attempt: base * 2^attempt.
func Backoff(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(1<<attempt)
}

// Attempt performs one call. When it fails, retryable reports whether another
// attempt may succeed.
type Attempt func(ctx context.Context, attempt int) (retryable bool, err error)

// Retry runs call until it succeeds, fails permanently, or maxRetries retries are
// spent. Once retries run out the last error is returned wrapped together with
// exhausted.
func Retry(ctx context.Context, maxRetries int, base time.Duration, exhausted error, call Attempt) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		retryable, err := call(ctx, attempt)
		if err == nil {
			return nil
		}

		if !retryable {
			return err
		}

		lastErr = err
		slog.WarnContext(ctx, "backend call failed", "attempt", attempt+1, "error", err)

		if attempt < maxRetries {
			backoff := Backoff(base, attempt)
			slog.InfoContext(ctx, "retrying with exponential backoff", "backoff",
				backoff, "next_attempt", attempt+2)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed after retries: %w: %w", lastErr, exhausted)
}
