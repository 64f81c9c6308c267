package postgre

import (
	"fmt"
	"strings"

	repo "ai-todo-manager/internal/todo/repository"
)

// buildFilterQuery builds the WHERE clause + args shared by count and
// list. The user_id condition is always present.
func (r *implRepository) buildFilterQuery(opt repo.ListTodosOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, opt.Priority)
		idx++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(category)", idx))
		args = append(args, opt.Category)
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	mods, args := r.buildFilterQuery(opt)
	parts := []string{"WHERE " + mods}
	idx := len(args) + 1

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_date DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
