package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/ai"
)

// processGenerateReq binds the generate-todo request body. A missing or
// malformed body degrades to an empty input, which the use case rejects
// with its own message.
func (h *handler) processGenerateReq(c *gin.Context) generateReq {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return generateReq{}
	}
	return req
}

// processAnalyzeReq binds and validates the analyze-todos request body.
// An absent todos field is a client error; an empty array is a valid
// collection and flows through.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, ai.InvalidInput(ai.MsgTodosRequired)
	}
	if req.Todos == nil {
		return req, ai.InvalidInput(ai.MsgTodosRequired)
	}
	return req, nil
}
