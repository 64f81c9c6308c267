package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/gemini"
)

func TestGenerateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation Rejects Before Model Call", func(t *testing.T) {
		llm := &mockGemini{}
		uc := New(&mockLogger{}, llm, fixedClock)

		for _, input := range []string{"", "  ", "a", strings.Repeat("x", 501)} {
			if _, err := uc.GenerateTodo(ctx, input); err == nil {
				t.Errorf("input %q: expected validation error", input)
			}
		}
		if llm.calls != 0 {
			t.Errorf("model called %d times for invalid input, want 0", llm.calls)
		}
	})

	t.Run("Missing API Key Is Configuration Failure", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, fixedClock)

		_, err := uc.GenerateTodo(ctx, "내일 회의 준비")
		var f *ai.Failure
		if !errors.As(err, &f) || f.Kind != ai.FailureConfiguration {
			t.Fatalf("expected configuration failure, got %v", err)
		}
		if f.Message != ai.MsgMissingAPIKey {
			t.Errorf("unexpected message: %q", f.Message)
		}
	})

	t.Run("Success Flow Post-Processes Model Output", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				cfg := req.GenerationConfig
				if cfg == nil || cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
					t.Errorf("request must constrain output to the todo schema")
				}
				// Past due date: post-processing must discard it.
				return textResponse(`{
					"title": "회의 준비",
					"due_date": "2025-03-01T10:00:00+09:00",
					"priority": "high",
					"category": ["업무"]
				}`), nil
			},
		}
		uc := New(&mockLogger{}, llm, fixedClock)

		got, err := uc.GenerateTodo(ctx, "급하게  회의   준비")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "회의 준비" || got.Priority != "high" {
			t.Errorf("unexpected record: %+v", got)
		}
		if got.DueDate != "2025-03-11T09:00:00+09:00" {
			t.Errorf("past due date must snap to tomorrow 09:00, got %q", got.DueDate)
		}
		if llm.calls != 1 {
			t.Errorf("model calls = %d, want 1", llm.calls)
		}
	})

	t.Run("Prompt Embeds Normalized Input And Date Context", func(t *testing.T) {
		var prompt string
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				prompt = req.Contents[0].Parts[0].Text
				return textResponse(`{"title":"운동 가기","priority":"medium","category":["건강"],"due_date":"2025-03-12T09:00:00+09:00"}`), nil
			},
		}
		uc := New(&mockLogger{}, llm, fixedClock)

		if _, err := uc.GenerateTodo(ctx, "  수요일에   운동  가기 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, `"수요일에 운동 가기"`) {
			t.Errorf("prompt missing normalized input")
		}
		if !strings.Contains(prompt, "2025-03-10") {
			t.Errorf("prompt missing current date")
		}
		if !strings.Contains(prompt, "월요일") {
			t.Errorf("prompt missing weekday name")
		}
	})

	t.Run("Fenced Model Output Still Parses", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse("```json\n{\"title\":\"우유 사기\",\"priority\":\"low\",\"category\":[\"개인\"],\"due_date\":\"2025-03-20T09:00:00+09:00\"}\n```"), nil
			},
		}
		uc := New(&mockLogger{}, llm, fixedClock)

		got, err := uc.GenerateTodo(ctx, "우유 사기")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "우유 사기" {
			t.Errorf("unexpected title: %q", got.Title)
		}
	})

	t.Run("Rate Limit Error Classified", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return nil, errors.New("gemini API error 429: rate limit exceeded")
			},
		}
		uc := New(&mockLogger{}, llm, fixedClock)

		_, err := uc.GenerateTodo(ctx, "내일 회의 준비")
		var f *ai.Failure
		if !errors.As(err, &f) || f.Kind != ai.FailureRateLimited {
			t.Fatalf("expected rate-limited failure, got %v", err)
		}
		if !f.Retryable {
			t.Errorf("rate-limited failure must be retryable")
		}
		if f.Message != ai.MsgQuotaExceeded {
			t.Errorf("unexpected message: %q", f.Message)
		}
	})

	t.Run("Unparseable Output Is Model Failure", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse("sure, here is your todo!"), nil
			},
		}
		uc := New(&mockLogger{}, llm, fixedClock)

		_, err := uc.GenerateTodo(ctx, "내일 회의 준비")
		var f *ai.Failure
		if !errors.As(err, &f) || f.Kind != ai.FailureModel {
			t.Fatalf("expected model failure, got %v", err)
		}
	})
}
