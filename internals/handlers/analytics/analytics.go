package analytics

import (
	"net/http"

	calc "FounderX/internals/analytics"
	"FounderX/internals/handlers/httpx"
)

// all four fields are required; pointers tell a missing field from a zero
type analyzeRequest struct {
	Revenue        *float64 `json:"revenue" validate:"required"`
	Expenses       *float64 `json:"expenses" validate:"required"`
	TasksCompleted *int     `json:"tasks_completed" validate:"required"`
	TasksTotal     *int     `json:"tasks_total" validate:"required"`
}

func AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		res := calc.Analyze(calc.Input{
			Revenue:        *req.Revenue,
			Expenses:       *req.Expenses,
			TasksCompleted: *req.TasksCompleted,
			TasksTotal:     *req.TasksTotal,
		})
		httpx.JSON(w, r, http.StatusOK, res)
	}
}
