package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/middleware"
	"ai-todo-manager/pkg/response"
)

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo for the signed-in user. Priority defaults to medium and category to 기타.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     200 {object} todoResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// List godoc
// @Summary     List todos
// @Description Returns the signed-in user's todos, newest first, with optional filters.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       completed query bool   false "Filter by completion state"
// @Param       priority  query string false "Filter by priority (high/medium/low)"
// @Param       category  query string false "Filter by category"
// @Param       limit     query int    false "Page size (default: 50)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get todo detail
// @Description Returns a single todo owned by the signed-in user.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// Update godoc
// @Summary     Update a todo
// @Description Partially updates a todo. Omitted fields keep their stored values.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} todoResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completion state. Completing stamps completed_at, reopening clears it.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/todos/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo owned by the signed-in user.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} map[string]bool
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"success": true})
}
