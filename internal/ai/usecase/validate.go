package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ai-todo-manager/internal/ai"
)

// Input bounds enforced before any model call, so unusable input never
// costs quota.
const (
	minInputRunes = 2
	maxInputRunes = 500
)

// validateInput gates raw user text. Returns nil on success.
func validateInput(input string) *ai.Failure {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ai.InvalidInput(ai.MsgEmptyInput)
	}

	if utf8.RuneCountInString(trimmed) < minInputRunes {
		return ai.InvalidInput(ai.MsgInputTooShort)
	}

	if n := utf8.RuneCountInString(input); n > maxInputRunes {
		return ai.InvalidInput(fmt.Sprintf(ai.MsgInputTooLong, n))
	}

	return nil
}

// normalizeInput trims leading/trailing whitespace and collapses runs of
// whitespace to a single space. Casing, punctuation, emoji and wording
// are preserved verbatim.
func normalizeInput(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
