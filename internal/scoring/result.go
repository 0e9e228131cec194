package scoring

// Result is the scored outcome of one completed session.
type Result struct {
	// OverallScore is a percentage in [0, 100].
	OverallScore int `json:"overall_score"`

	// CategoryScores holds one percentage per category, in order of first
	// appearance in the question sequence.
	CategoryScores []CategoryScore `json:"category_scores"`

	// Insights are short human-readable remarks, in display order.
	Insights []string `json:"insights"`
}

// CategoryScore is the percentage earned within one category.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Category returns the score for name and whether it was present.
func (r Result) Category(name string) (int, bool) {
	for _, cs := range r.CategoryScores {
		if cs.Category == name {
			return cs.Score, true
		}
	}
	return 0, false
}

// CategoryMap returns the category breakdown as a map.
func (r Result) CategoryMap() map[string]int {
	m := make(map[string]int, len(r.CategoryScores))
	for _, cs := range r.CategoryScores {
		m[cs.Category] = cs.Score
	}
	return m
}

// Highest returns the top-scoring category. Ties go to the category seen
// first. Returns "" when there are no categories.
func (r Result) Highest() string {
	best := ""
	bestScore := -1
	for _, cs := range r.CategoryScores {
		if cs.Score > bestScore {
			best = cs.Category
			bestScore = cs.Score
		}
	}
	return best
}
