package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Run("Nil Error", func(t *testing.T) {
		if f := Classify(nil); f != nil {
			t.Errorf("nil error must classify to nil, got %v", f)
		}
	})

	t.Run("Existing Failure Passes Through", func(t *testing.T) {
		original := InvalidInput(MsgEmptyInput)
		if got := Classify(original); got != original {
			t.Errorf("pre-classified failure must pass through unchanged, got %v", got)
		}

		wrapped := fmt.Errorf("usecase: %w", NotConfigured())
		got := Classify(wrapped)
		if got == nil || got.Kind != FailureConfiguration {
			t.Errorf("wrapped failure must unwrap to its original kind, got %v", got)
		}
	})

	t.Run("Deadline Exceeded Is Unknown", func(t *testing.T) {
		got := Classify(context.DeadlineExceeded)
		if got.Kind != FailureUnknown || got.Message != MsgUnknownFailure {
			t.Errorf("got %v", got)
		}
	})

	t.Run("Rate Limit Signals", func(t *testing.T) {
		cases := []string{
			"RESOURCE_EXHAUSTED: Quota exceeded for requests",
			"upstream returned rate limit error",
			"gemini API error 429: too many requests",
		}
		for _, msg := range cases {
			got := Classify(errors.New(msg))
			if got.Kind != FailureRateLimited {
				t.Errorf("%q: kind = %v, want rate limited", msg, got.Kind)
			}
			if !got.Retryable {
				t.Errorf("%q: must be retryable", msg)
			}
			if got.Message != MsgQuotaExceeded {
				t.Errorf("%q: message = %q", msg, got.Message)
			}
		}
	})

	t.Run("Other Errors Are Model Failures", func(t *testing.T) {
		got := Classify(errors.New("connection reset by peer"))
		if got.Kind != FailureModel {
			t.Fatalf("kind = %v, want model failure", got.Kind)
		}
		want := fmt.Sprintf(MsgModelFailure, "connection reset by peer")
		if got.Message != want {
			t.Errorf("message = %q, want %q", got.Message, want)
		}
		if got.Retryable {
			t.Errorf("model failure is not retryable")
		}
	})
}
