package persona

import "strings"

// PriorityLevel classifies how urgently a query should be handled.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// priorityTiers is scanned in order: a HIGH phrase always wins over a MEDIUM
// or LOW phrase appearing in the same query. The order is load-bearing, so
// the tiers live in a slice rather than a map.
var priorityTiers = []struct {
	Level   PriorityLevel
	Phrases []string
}{
	{PriorityHigh, []string{
		"patient safety concerns",
		"clinical emergencies",
		"advocacy needs",
		"treatment planning",
		"professional consultations",
	}},
	{PriorityMedium, []string{
		"wellness optimization",
		"preventive care",
		"education materials",
		"protocol development",
		"research integration",
	}},
	{PriorityLow, []string{
		"administrative matters",
		"non-clinical requests",
		"general inquiries",
		"networking",
		"social interactions",
	}},
}

// Prioritize returns the first tier whose phrase appears in the query,
// defaulting to medium.
func Prioritize(query string) PriorityLevel {
	lowered := strings.ToLower(query)
	for _, tier := range priorityTiers {
		for _, phrase := range tier.Phrases {
			if strings.Contains(lowered, phrase) {
				return tier.Level
			}
		}
	}
	return PriorityMedium
}
