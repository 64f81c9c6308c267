package http

import (
	"time"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	Category    []string   `json:"category"`
}

func (r createReq) toInput() todo.CreateTodoInput {
	return todo.CreateTodoInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Category:    r.Category,
	}
}

type listReq struct {
	Completed *bool  `form:"completed"`
	Priority  string `form:"priority"`
	Category  string `form:"category"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() todo.ListTodosInput {
	return todo.ListTodosInput{
		Completed: r.Completed,
		Priority:  r.Priority,
		Category:  r.Category,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Category    []string   `json:"category"`
	Completed   *bool      `json:"completed"`
}

func (r updateReq) toInput() todo.UpdateTodoInput {
	return todo.UpdateTodoInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Category:    r.Category,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	Category    []string   `json:"category"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Category:    t.Category,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedDate: t.CreatedDate,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listResp struct {
	Todos  []todoResp `json:"todos"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out todo.ListTodosOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{
		Todos:  todos,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
