package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Result
	}{
		{
			name: "loss wins over borderline productivity",
			in:   Input{Revenue: 100, Expenses: 150, TasksCompleted: 1, TasksTotal: 2},
			want: Result{Profitability: -50, Productivity: 50, Suggestion: SuggestionCutCosts},
		},
		{
			name: "profitable but slow",
			in:   Input{Revenue: 200, Expenses: 50, TasksCompleted: 1, TasksTotal: 10},
			want: Result{Profitability: 150, Productivity: 10, Suggestion: SuggestionEfficiency},
		},
		{
			name: "healthy",
			in:   Input{Revenue: 200, Expenses: 200, TasksCompleted: 3, TasksTotal: 4},
			want: Result{Profitability: 0, Productivity: 75, Suggestion: SuggestionScale},
		},
		{
			name: "no tasks",
			in:   Input{Revenue: 10, Expenses: 5, TasksCompleted: 3, TasksTotal: 0},
			want: Result{Profitability: 5, Productivity: 0, Suggestion: SuggestionEfficiency},
		},
		{
			name: "negative task total treated as none",
			in:   Input{Revenue: 1, Expenses: 0, TasksCompleted: 1, TasksTotal: -4},
			want: Result{Profitability: 1, Productivity: 0, Suggestion: SuggestionEfficiency},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.in)
			assert.InDelta(t, tt.want.Profitability, got.Profitability, 1e-9)
			assert.InDelta(t, tt.want.Productivity, got.Productivity, 1e-9)
			assert.Equal(t, tt.want.Suggestion, got.Suggestion)
		})
	}
}
