package analytics

const (
	SuggestionScale      = "Looks good! Keep scaling 🚀"
	SuggestionCutCosts   = "Cut costs or increase revenue to improve profitability."
	SuggestionEfficiency = "Focus on team efficiency to improve productivity."
)

// productivityThreshold is the percentage under which efficiency advice is given.
const productivityThreshold = 50

type Input struct {
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	TasksCompleted int     `json:"tasks_completed"`
	TasksTotal     int     `json:"tasks_total"`
}

type Result struct {
	Profitability float64 `json:"profitability"`
	Productivity  float64 `json:"productivity"`
	Suggestion    string  `json:"suggestion"`
}

// Analyze derives profitability, productivity (percent of tasks completed,
// 0 when there are no tasks) and one suggestion. Negative profitability
// takes precedence over low productivity.
func Analyze(in Input) Result {
	profitability := in.Revenue - in.Expenses

	var productivity float64
	if in.TasksTotal > 0 {
		productivity = float64(in.TasksCompleted) / float64(in.TasksTotal) * 100
	}

	suggestion := SuggestionScale
	switch {
	case profitability < 0:
		suggestion = SuggestionCutCosts
	case productivity < productivityThreshold:
		suggestion = SuggestionEfficiency
	}

	return Result{
		Profitability: profitability,
		Productivity:  productivity,
		Suggestion:    suggestion,
	}
}
