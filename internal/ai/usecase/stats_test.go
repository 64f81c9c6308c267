package usecase

import (
	"testing"

	"ai-todo-manager/internal/ai"
)

func TestComputeStats(t *testing.T) {
	now := fixedNow // 2025-03-10 15:30 KST

	t.Run("Completion Rate Is Exact", func(t *testing.T) {
		todos := make([]ai.TodoSnapshot, 10)
		for i := range todos {
			todos[i] = ai.TodoSnapshot{Title: "t", Priority: "medium", Completed: i < 7}
		}

		stats := computeStats(todos, now)
		if stats.Total != 10 || stats.Completed != 7 {
			t.Fatalf("counts = %d/%d, want 7/10", stats.Completed, stats.Total)
		}
		if stats.CompletionRate != 70.0 {
			t.Errorf("completion rate = %v, want exactly 70.0", stats.CompletionRate)
		}
	})

	t.Run("Rate Rounds To One Decimal", func(t *testing.T) {
		todos := []ai.TodoSnapshot{
			{Completed: true}, {Completed: false}, {Completed: false},
		}
		stats := computeStats(todos, now)
		if stats.CompletionRate != 33.3 {
			t.Errorf("completion rate = %v, want 33.3", stats.CompletionRate)
		}
	})

	t.Run("Priority And Category Counts", func(t *testing.T) {
		todos := []ai.TodoSnapshot{
			{Priority: "high", Category: []string{"업무"}},
			{Priority: "high", Category: []string{"업무", "학습"}},
			{Priority: "low", Category: []string{"건강"}},
			{Priority: "", Category: nil}, // unknown priority counts as medium
		}

		stats := computeStats(todos, now)
		if stats.HighCount != 2 || stats.MediumCount != 1 || stats.LowCount != 1 {
			t.Errorf("priority counts = %d/%d/%d", stats.HighCount, stats.MediumCount, stats.LowCount)
		}
		if stats.CategoryCount["업무"] != 2 || stats.CategoryCount["학습"] != 1 || stats.CategoryCount["건강"] != 1 {
			t.Errorf("category counts = %v", stats.CategoryCount)
		}
	})

	t.Run("Overdue And Due Today", func(t *testing.T) {
		todos := []ai.TodoSnapshot{
			{DueDate: "2025-03-09T10:00:00+09:00", Completed: false}, // overdue
			{DueDate: "2025-03-09T10:00:00+09:00", Completed: true},  // past but done
			{DueDate: "2025-03-10T20:00:00+09:00", Completed: false}, // today, later
			{DueDate: "2025-03-12T09:00:00+09:00", Completed: false}, // future
			{DueDate: "", Completed: false},                          // no due date
		}

		stats := computeStats(todos, now)
		if stats.Overdue != 1 {
			t.Errorf("overdue = %d, want 1", stats.Overdue)
		}
		if stats.DueToday != 1 {
			t.Errorf("due today = %d, want 1", stats.DueToday)
		}
	})

	t.Run("Time Of Day Buckets", func(t *testing.T) {
		todos := []ai.TodoSnapshot{
			{DueDate: "2025-03-12T09:00:00+09:00"}, // morning
			{DueDate: "2025-03-12T11:59:00+09:00"}, // morning
			{DueDate: "2025-03-12T12:00:00+09:00"}, // afternoon
			{DueDate: "2025-03-12T14:00:00+09:00"}, // afternoon
			{DueDate: "2025-03-12T18:00:00+09:00"}, // evening
			{DueDate: "2025-03-12T23:59:00+09:00"}, // evening
			{DueDate: "2025-03-12T03:00:00+09:00"}, // evening (early hours)
		}

		stats := computeStats(todos, now)
		if stats.Morning != 2 || stats.Afternoon != 2 || stats.Evening != 3 {
			t.Errorf("buckets = %d/%d/%d, want 2/2/3", stats.Morning, stats.Afternoon, stats.Evening)
		}
	})
}
