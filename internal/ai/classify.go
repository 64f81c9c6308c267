package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Classify maps a model-invocation error to an outward Failure.
//
// The provider reports quota exhaustion only through free-text error
// bodies, so the string matching lives here and nowhere else. A context
// deadline expiry is treated the same as a failure without a usable
// message.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	// Already classified (validation, configuration) passes through.
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Failure{Kind: FailureUnknown, Message: MsgUnknownFailure}
	}

	message := err.Error()
	if message == "" {
		return &Failure{Kind: FailureUnknown, Message: MsgUnknownFailure}
	}

	lower := strings.ToLower(message)
	if strings.Contains(lower, "quota") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "429") {
		return &Failure{
			Kind:      FailureRateLimited,
			Message:   MsgQuotaExceeded,
			Retryable: true,
		}
	}

	return &Failure{
		Kind:    FailureModel,
		Message: fmt.Sprintf(MsgModelFailure, message),
	}
}
