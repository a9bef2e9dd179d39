package advisor

type Recommendation struct {
	Domain      string `json:"domain"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}

// Recommend is not implemented: it returns the same two placeholder entries
// whatever sector and stage are.
func Recommend(sector, stage string) []Recommendation {
	return []Recommendation{
		{Domain: "Test Idea 1 (AI)", Description: "Connection is working.", Confidence: 95},
		{Domain: "Test Idea 2 (Fintech)", Description: "This is a test from backend.", Confidence: 92},
	}
}
