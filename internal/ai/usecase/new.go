package usecase

import (
	"time"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/gemini"
	pkgLog "ai-todo-manager/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm gemini.IGemini
	now func() time.Time
}

var _ ai.UseCase = (*implUseCase)(nil)

// New creates a new AI UseCase instance.
//
// llm may be nil when no API key is configured; operations then return
// the fixed configuration failure instead of crashing. nowFunc is the
// clock used for date resolution; nil defaults to time.Now.
func New(l pkgLog.Logger, llm gemini.IGemini, nowFunc func() time.Time) *implUseCase {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &implUseCase{
		l:   l,
		llm: llm,
		now: nowFunc,
	}
}
