// Package resilience provides retry with exponential backoff for the
// external collaborators stackforge shells out to (package registries,
// release APIs).
package resilience

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryPolicy defines the retry behavior for operations.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts (not including initial call).
	MaxRetries int

	// BaseDelay is the initial delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// UseJitter adds randomness to delays to prevent thundering herd.
	UseJitter bool

	// RetryableErrors is a list of errors that should be retried.
	// If empty, all errors are considered retryable.
	RetryableErrors []error
}

// DefaultPolicy is tuned for flaky-network operations: three retries
// starting at half a second, capped at five seconds.
func DefaultPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		UseJitter:  true,
	}
}

// Retry executes the given function with the specified retry policy.
// It returns the error from the last attempt if all retries are exhausted.
func Retry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error

	maxAttempts := policy.MaxRetries + 1

	for attempt := range maxAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isErrorRetryable(err, policy.RetryableErrors) {
			return err
		}

		// Don't delay after the last attempt
		if attempt < maxAttempts-1 {
			delay := CalculateBackoff(attempt, policy.BaseDelay, policy.MaxDelay, policy.UseJitter)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}

// CalculateBackoff calculates the backoff delay for a given attempt.
// The delay grows exponentially: baseDelay * 2^attempt, capped at maxDelay.
func CalculateBackoff(attempt int, baseDelay, maxDelay time.Duration, useJitter bool) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	// Jitter spreads delays between 0.5x and 1.5x of the calculated value.
	if useJitter {
		jitterFactor := 0.5 + rand.Float64()
		delay = time.Duration(float64(delay) * jitterFactor)
	}

	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// permanentError wraps an error that must never be retried, whatever the
// policy's retryable set says.
type permanentError struct {
	err error
}

// Permanent marks err as non-retryable. Retry returns it after the first
// attempt. Use it for deterministic failures where repeating the call can
// only produce the same outcome.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Error implements the error interface.
func (e *permanentError) Error() string {
	return e.err.Error()
}

// Unwrap returns the wrapped error.
func (e *permanentError) Unwrap() error {
	return e.err
}

// isErrorRetryable reports whether the error matches the retryable set.
// An empty set means every error is retryable, except errors marked
// Permanent.
func isErrorRetryable(err error, retryable []error) bool {
	var perm *permanentError
	if errors.As(err, &perm) {
		return false
	}
	if len(retryable) == 0 {
		return true
	}
	for _, r := range retryable {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
