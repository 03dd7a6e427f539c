package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func TestRetry(t *testing.T) {
	t.Run("succeeds_first_attempt", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), fastPolicy(), func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("Retry error: %v", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("succeeds_after_failures", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), fastPolicy(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Retry error: %v", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("exhausts_retries", func(t *testing.T) {
		wantErr := errors.New("persistent")
		calls := 0
		err := Retry(context.Background(), fastPolicy(), func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("expected last error, got %v", err)
		}
		if calls != 4 { // initial + 3 retries
			t.Errorf("calls = %d, want 4", calls)
		}
	})

	t.Run("non_retryable_error_returns_immediately", func(t *testing.T) {
		retryable := errors.New("retry me")
		fatal := errors.New("fatal")
		policy := fastPolicy()
		policy.RetryableErrors = []error{retryable}

		calls := 0
		err := Retry(context.Background(), policy, func() error {
			calls++
			return fatal
		})
		if !errors.Is(err, fatal) {
			t.Errorf("expected fatal error, got %v", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("permanent_error_not_retried", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), fastPolicy(), func() error {
			calls++
			return Permanent(errors.New("exit status 1"))
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("permanent_preserves_cause", func(t *testing.T) {
		cause := errors.New("bad manifest")
		if !errors.Is(Permanent(cause), cause) {
			t.Error("Permanent should unwrap to its cause")
		}
		if Permanent(nil) != nil {
			t.Error("Permanent(nil) should be nil")
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Retry(ctx, fastPolicy(), func() error { return errors.New("never") })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestCalculateBackoff(t *testing.T) {
	t.Run("exponential_growth", func(t *testing.T) {
		base := 100 * time.Millisecond
		max := 10 * time.Second
		if d := CalculateBackoff(0, base, max, false); d != base {
			t.Errorf("attempt 0 = %v, want %v", d, base)
		}
		if d := CalculateBackoff(2, base, max, false); d != 400*time.Millisecond {
			t.Errorf("attempt 2 = %v, want 400ms", d)
		}
	})

	t.Run("capped_at_max", func(t *testing.T) {
		if d := CalculateBackoff(20, time.Second, 5*time.Second, false); d != 5*time.Second {
			t.Errorf("capped delay = %v, want 5s", d)
		}
	})

	t.Run("jitter_stays_within_bounds", func(t *testing.T) {
		base := 100 * time.Millisecond
		max := time.Minute
		for range 50 {
			d := CalculateBackoff(1, base, max, true)
			if d < 100*time.Millisecond || d > 300*time.Millisecond {
				t.Fatalf("jittered delay %v outside [0.5x, 1.5x] of 200ms", d)
			}
		}
	})
}
