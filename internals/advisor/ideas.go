package advisor

// fallbackIdeaCount is how many ideas are returned without a known domain.
const fallbackIdeaCount = 5

type domainIdeas struct {
	domain string
	ideas  []string
}

// ideaTable is ordered; the fallback list is taken in this order.
var ideaTable = []domainIdeas{
	{"AI", []string{"AI-powered healthcare assistant", "Predictive analytics for logistics"}},
	{"Fintech", []string{"Micro-investment platform", "AI fraud detection"}},
	{"Healthtech", []string{"Remote patient monitoring", "AI drug discovery"}},
	{"Logistics", []string{"Smart warehouse automation", "Delivery optimization AI"}},
}

// SuggestIdeas returns the ideas for preferredDomain, or the first five ideas
// across all domains when the domain is empty or unknown. The result is a
// fresh slice.
func SuggestIdeas(preferredDomain string) []string {
	if preferredDomain != "" {
		for _, d := range ideaTable {
			if d.domain == preferredDomain {
				return append([]string(nil), d.ideas...)
			}
		}
	}

	out := make([]string, 0, fallbackIdeaCount)
	for _, d := range ideaTable {
		for _, idea := range d.ideas {
			if len(out) == fallbackIdeaCount {
				return out
			}
			out = append(out, idea)
		}
	}
	return out
}
