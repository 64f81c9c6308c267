package usecase

import (
	"strings"
	"time"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/internal/model"
)

const (
	maxTitleRunes      = 50
	truncatedTitleRune = 47
	placeholderTitle   = "새 할 일"
	defaultCategory    = "기타"
)

// postProcess repairs the model's raw structured output into a record
// that satisfies every todo invariant. It is total: no input, however
// malformed, makes it fail. Defaults are substituted instead.
func postProcess(todo ai.GeneratedTodo, now time.Time) ai.GeneratedTodo {
	result := todo

	// 1. A past due date is discarded entirely and snapped to tomorrow
	// 09:00 KST, never adjusted forward minimally. An unparseable one
	// is treated as missing.
	if s := strings.TrimSpace(result.DueDate); s != "" {
		due, err := time.Parse(time.RFC3339, s)
		if err != nil {
			result.DueDate = ""
		} else if due.Before(now) {
			result.DueDate = formatKST(tomorrowMorning(now))
		}
	} else {
		result.DueDate = ""
	}

	// 2. Title clamp: >50 runes truncates to 47 + ellipsis; empty or
	// single-rune titles become the placeholder.
	title := strings.TrimSpace(result.Title)
	if runes := []rune(title); len(runes) > maxTitleRunes {
		title = string(runes[:truncatedTitleRune]) + "..."
	} else if len(runes) < 2 {
		title = placeholderTitle
	}
	result.Title = title

	// 3. Priority defaults to medium when absent or unrecognized.
	if !model.ValidPriority(result.Priority) {
		result.Priority = model.PriorityMedium
	}

	// 4. Category is never empty.
	if len(result.Category) == 0 {
		result.Category = []string{defaultCategory}
	}

	// 5. Missing due date derives from the (already-defaulted) priority.
	if result.DueDate == "" {
		result.DueDate = formatKST(defaultDueDate(result.Priority, now))
	}

	return result
}
