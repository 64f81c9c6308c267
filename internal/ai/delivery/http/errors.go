package http

import (
	"errors"
	"net/http"

	"ai-todo-manager/internal/ai"
	pkgErrors "ai-todo-manager/pkg/errors"
)

// mapError translates use-case failures into HTTP errors. Every AI
// operation returns an *ai.Failure, so the switch is exhaustive over
// its kinds.
func (h *handler) mapError(err error) error {
	var f *ai.Failure
	if !errors.As(err, &f) {
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, ai.MsgUnknownFailure)
	}

	switch f.Kind {
	case ai.FailureInvalidInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, f.Message)
	case ai.FailureRateLimited:
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, f.Message)
	default:
		// Configuration, model and unknown failures all surface as 500
		// with the failure's own user-facing message.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, f.Message)
	}
}
