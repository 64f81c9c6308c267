package ai

// GeneratedTodo is the structured record produced by the extraction
// pipeline. After post-processing it always satisfies the record
// invariants: title in [1,50] runes, due_date not in the past (KST),
// valid priority, at least one category.
type GeneratedTodo struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
}

// Period selects the analysis reporting window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// TodoSnapshot is the per-task payload the analysis operates on.
// Date fields are ISO-8601 strings as stored (+09:00 offset).
type TodoSnapshot struct {
	Title       string   `json:"title"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
	DueDate     string   `json:"due_date"`
	CreatedDate string   `json:"created_date"`
}

// AnalyzeInput is the analysis request payload.
type AnalyzeInput struct {
	Todos  []TodoSnapshot
	Period Period
}

// Analysis is the analysis response payload. Slices are never nil.
type Analysis struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
