package usecase

import (
	"context"
	"time"

	"ai-todo-manager/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)    {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)   {}

// Mock Gemini client for testing; counts calls so tests can assert that
// validation failures never reach the model.
type mockGemini struct {
	calls        int
	generateFunc func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return textResponse("{}"), nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

// fixedNow is the pinned clock used across the usecase tests:
// Monday 2025-03-10 15:30 KST.
var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, kst)

func fixedClock() time.Time { return fixedNow }
