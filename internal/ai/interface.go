package ai

import "context"

// UseCase defines the business logic interface for the AI domain.
//
// Both operations are stateless: one outbound model call at most, no
// shared state between requests. Errors returned are always *Failure.
type UseCase interface {
	// GenerateTodo converts free-form natural-language text into a
	// structured, invariant-satisfying todo record.
	GenerateTodo(ctx context.Context, input string) (GeneratedTodo, error)

	// AnalyzeTodos summarizes a todo collection into narrative insights.
	// An empty collection returns a canned result without a model call.
	AnalyzeTodos(ctx context.Context, input AnalyzeInput) (Analysis, error)
}
