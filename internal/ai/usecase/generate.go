package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/gemini"
)

// GenerateTodo converts free-form text into a structured todo record:
// validate → normalize → prompt with KST date context → model call
// constrained to the todo schema → total post-processing.
func (uc *implUseCase) GenerateTodo(ctx context.Context, input string) (ai.GeneratedTodo, error) {
	if f := validateInput(input); f != nil {
		return ai.GeneratedTodo{}, f
	}

	if uc.llm == nil {
		uc.l.Errorf(ctx, "uc.GenerateTodo: gemini API key is not configured")
		return ai.GeneratedTodo{}, ai.NotConfigured()
	}

	normalized := normalizeInput(input)
	now := uc.now().In(kst)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: buildGeneratePrompt(normalized, now)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      generateTemperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   todoSchema,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateTodo GenerateContent: %v", err)
		return ai.GeneratedTodo{}, ai.Classify(err)
	}

	raw := stripCodeFence(resp.Text())
	if raw == "" {
		uc.l.Warnf(ctx, "uc.GenerateTodo: empty model response")
		return ai.GeneratedTodo{}, ai.Classify(fmt.Errorf("empty model response"))
	}

	var todo ai.GeneratedTodo
	if err := json.Unmarshal([]byte(raw), &todo); err != nil {
		uc.l.Warnf(ctx, "uc.GenerateTodo: unparseable model output: %v", err)
		return ai.GeneratedTodo{}, ai.Classify(fmt.Errorf("failed to parse model output: %v", err))
	}

	result := postProcess(todo, now)
	uc.l.Infof(ctx, "uc.GenerateTodo: %q → %q (due %s, priority %s)",
		normalized, result.Title, result.DueDate, result.Priority)

	return result, nil
}
