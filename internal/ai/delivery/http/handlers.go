package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-todo-manager/pkg/response"
)

// GenerateTodo godoc
// @Summary     Generate a structured todo from natural language
// @Description Converts a Korean natural-language sentence into a structured todo record with title, due date, priority and categories.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Natural-language input"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.ErrResp "Invalid input"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     429 {object} response.ErrResp "Rate limited"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/ai/generate-todo [POST]
func (h *handler) GenerateTodo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	req := h.processGenerateReq(c)

	output, err := h.uc.GenerateTodo(ctx, req.Input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateTodo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// AnalyzeTodos godoc
// @Summary     Analyze a todo collection
// @Description Computes completion statistics over the submitted todos and returns an AI-written narrative with urgent tasks, insights and recommendations.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Todo collection and analysis period (today or week)"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.ErrResp "Invalid input"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     429 {object} response.ErrResp "Rate limited"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/ai/analyze-todos [POST]
func (h *handler) AnalyzeTodos(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.AnalyzeTodos(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeTodos: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}
