package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/gemini"
)

const maxUrgentTasks = 5

// AnalyzeTodos computes descriptive statistics locally, then asks the
// model for a narrative layer over those exact numbers. An empty
// collection never contacts the model.
func (uc *implUseCase) AnalyzeTodos(ctx context.Context, input ai.AnalyzeInput) (ai.Analysis, error) {
	if !input.Period.Valid() {
		return ai.Analysis{}, ai.InvalidInput(ai.MsgInvalidPeriod)
	}

	if len(input.Todos) == 0 {
		return emptyAnalysis(input.Period), nil
	}

	if uc.llm == nil {
		uc.l.Errorf(ctx, "uc.AnalyzeTodos: gemini API key is not configured")
		return ai.Analysis{}, ai.NotConfigured()
	}

	now := uc.now().In(kst)
	stats := computeStats(input.Todos, now)
	uc.l.Infof(ctx, "uc.AnalyzeTodos: %d todos, %.1f%% complete, %d overdue",
		stats.Total, stats.CompletionRate, stats.Overdue)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: buildAnalyzePrompt(input.Todos, input.Period, stats)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AnalyzeTodos GenerateContent: %v", err)
		return ai.Analysis{}, ai.Classify(err)
	}

	raw := stripCodeFence(resp.Text())
	if raw == "" {
		uc.l.Warnf(ctx, "uc.AnalyzeTodos: empty model response")
		return ai.Analysis{}, ai.Classify(fmt.Errorf("empty model response"))
	}

	var analysis ai.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		uc.l.Warnf(ctx, "uc.AnalyzeTodos: unparseable model output: %v", err)
		return ai.Analysis{}, ai.Classify(fmt.Errorf("failed to parse model output: %v", err))
	}

	return normalizeAnalysis(analysis), nil
}

// emptyAnalysis is the canned zero-task result.
func emptyAnalysis(period ai.Period) ai.Analysis {
	summary := "오늘 등록된 할 일이 없어. 새로운 할 일을 추가해보는 건 어때?"
	if period == ai.PeriodWeek {
		summary = "이번 주 등록된 할 일이 없어. 계획을 세워보는 건 어때?"
	}
	return ai.Analysis{
		Summary:         summary,
		UrgentTasks:     []string{},
		Insights:        []string{"할 일을 추가하면 AI가 분석해줄게"},
		Recommendations: []string{"새로운 할 일을 추가해봐"},
	}
}

// normalizeAnalysis enforces the response contract: no nil slices,
// urgent tasks capped at 5.
func normalizeAnalysis(a ai.Analysis) ai.Analysis {
	if a.UrgentTasks == nil {
		a.UrgentTasks = []string{}
	}
	if len(a.UrgentTasks) > maxUrgentTasks {
		a.UrgentTasks = a.UrgentTasks[:maxUrgentTasks]
	}
	if a.Insights == nil {
		a.Insights = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	return a
}
