package usecase

import (
	"math"
	"time"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/internal/model"
)

// analysisStats are the descriptive statistics computed locally and
// deterministically before the analysis prompt is built.
type analysisStats struct {
	Total          int
	Completed      int
	CompletionRate float64 // percentage, rounded to 1 decimal
	HighCount      int
	MediumCount    int
	LowCount       int
	CategoryCount  map[string]int
	Overdue        int
	DueToday       int
	Morning        int // due hour 06-12
	Afternoon      int // due hour 12-18
	Evening        int // due hour 18-06
}

// computeStats derives the statistics for a non-empty todo collection.
// All date comparisons use now in KST; snapshots without a parseable
// due date are skipped for the date-derived counters.
func computeStats(todos []ai.TodoSnapshot, now time.Time) analysisStats {
	stats := analysisStats{
		Total:         len(todos),
		CategoryCount: make(map[string]int),
	}

	nowKST := now.In(kst)

	for _, t := range todos {
		if t.Completed {
			stats.Completed++
		}

		switch t.Priority {
		case model.PriorityHigh:
			stats.HighCount++
		case model.PriorityLow:
			stats.LowCount++
		default:
			stats.MediumCount++
		}

		for _, cat := range t.Category {
			stats.CategoryCount[cat]++
		}

		due, err := time.Parse(time.RFC3339, t.DueDate)
		if err != nil {
			continue
		}
		dueKST := due.In(kst)

		if due.Before(now) && !t.Completed {
			stats.Overdue++
		}

		if sameDay(dueKST, nowKST) {
			stats.DueToday++
		}

		switch hour := dueKST.Hour(); {
		case hour >= 6 && hour < 12:
			stats.Morning++
		case hour >= 12 && hour < 18:
			stats.Afternoon++
		default:
			stats.Evening++
		}
	}

	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	return stats
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
