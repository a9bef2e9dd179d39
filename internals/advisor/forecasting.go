// Package advisor holds the placeholder "AI" advice: fixed growth scores,
// idea lists and recommendations. Nothing here is learned or computed.
package advisor

// DefaultGrowthScore is returned for domains missing from the table.
const DefaultGrowthScore = 50

var growthScores = map[string]int{
	"AI":         95,
	"Fintech":    88,
	"Healthtech": 80,
	"Logistics":  70,
}

func PredictGrowth(domain string) int {
	if score, ok := growthScores[domain]; ok {
		return score
	}
	return DefaultGrowthScore
}
