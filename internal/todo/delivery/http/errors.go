package http

import (
	"net/http"

	"ai-todo-manager/internal/todo"
	pkgErrors "ai-todo-manager/pkg/errors"
)

// mapError translates domain errors into HTTP errors with the
// product's user-facing messages.
func (h *handler) mapError(err error) error {
	switch err {
	case todo.ErrTodoNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "할 일을 찾을 수 없어")
	case todo.ErrTitleRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "할 일 제목을 입력해줘")
	case todo.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "우선순위는 high, medium, low 중 하나여야 해")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "요청을 처리하지 못했어. 잠시 후 다시 시도해줘.")
	}
}
