package http

import (
	"ai-todo-manager/internal/ai"
)

// --- Request DTOs ---

type generateReq struct {
	Input string `json:"input"`
}

type analyzeReq struct {
	Todos  []ai.TodoSnapshot `json:"todos"`
	Period string            `json:"period"`
}

func (r analyzeReq) toInput() ai.AnalyzeInput {
	return ai.AnalyzeInput{
		Todos:  r.Todos,
		Period: ai.Period(r.Period),
	}
}

// --- Response DTOs ---

type generateResp struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
}

func (h *handler) newGenerateResp(out ai.GeneratedTodo) generateResp {
	return generateResp{
		Title:       out.Title,
		Description: out.Description,
		DueDate:     out.DueDate,
		Priority:    out.Priority,
		Category:    out.Category,
	}
}

type analyzeResp struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func (h *handler) newAnalyzeResp(out ai.Analysis) analyzeResp {
	return analyzeResp{
		Summary:         out.Summary,
		UrgentTasks:     out.UrgentTasks,
		Insights:        out.Insights,
		Recommendations: out.Recommendations,
	}
}
