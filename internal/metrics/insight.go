package metrics

// InsightCategory classifies an advisory message.
type InsightCategory string

const (
	CategoryRisk        InsightCategory = "risk"
	CategoryOpportunity InsightCategory = "opportunity"
)

// ParseInsightCategory converts a wire category to an InsightCategory.
// Returns ok=false for unknown categories; callers drop those entries
// rather than guessing a severity.
func ParseInsightCategory(s string) (InsightCategory, bool) {
	switch InsightCategory(s) {
	case CategoryRisk, CategoryOpportunity:
		return InsightCategory(s), true
	default:
		return "", false
	}
}

// Insight is an advisory message surfaced to the user.
type Insight struct {
	Category InsightCategory
	Title    string
	Body     string
}
