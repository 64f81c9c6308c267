package usecase

import (
	"strings"
	"testing"

	"ai-todo-manager/internal/ai"
)

func TestValidateInput(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		f := validateInput("")
		if f == nil || f.Kind != ai.FailureInvalidInput {
			t.Fatalf("expected invalid-input failure, got %v", f)
		}
		if f.Message != ai.MsgEmptyInput {
			t.Errorf("unexpected message: %q", f.Message)
		}
	})

	t.Run("Whitespace Only", func(t *testing.T) {
		f := validateInput("   \t\n  ")
		if f == nil || f.Message != ai.MsgEmptyInput {
			t.Errorf("expected empty-input message, got %v", f)
		}
	})

	t.Run("Too Short After Trim", func(t *testing.T) {
		f := validateInput("  a  ")
		if f == nil || f.Message != ai.MsgInputTooShort {
			t.Errorf("expected too-short message, got %v", f)
		}
	})

	t.Run("Too Long Reports Actual Length", func(t *testing.T) {
		f := validateInput(strings.Repeat("가", 501))
		if f == nil || f.Kind != ai.FailureInvalidInput {
			t.Fatalf("expected invalid-input failure, got %v", f)
		}
		if !strings.Contains(f.Message, "501") {
			t.Errorf("message should contain actual length 501: %q", f.Message)
		}
	})

	t.Run("Boundary Lengths Pass", func(t *testing.T) {
		if f := validateInput("밥?"); f != nil {
			t.Errorf("2-rune input should pass: %v", f)
		}
		if f := validateInput(strings.Repeat("가", 500)); f != nil {
			t.Errorf("500-rune input should pass: %v", f)
		}
	})
}

func TestNormalizeInput(t *testing.T) {
	t.Run("Collapses Whitespace Runs", func(t *testing.T) {
		got := normalizeInput("  내일   아침 \t 운동\n하기  ")
		want := "내일 아침 운동 하기"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := normalizeInput("회의   준비  자료 만들기")
		twice := normalizeInput(once)
		if once != twice {
			t.Errorf("normalizing a normalized string changed it: %q vs %q", once, twice)
		}
	})

	t.Run("Preserves Content Verbatim", func(t *testing.T) {
		got := normalizeInput("PT 예약!! 😀 (저녁 7시)")
		want := "PT 예약!! 😀 (저녁 7시)"
		if got != want {
			t.Errorf("punctuation/emoji must survive: %q", got)
		}
	})
}
