package scoring

import (
	"fmt"

	"github.com/abhisek/assessiz/internal/bank"
)

// Score grades answers for questions with the given strategy. It is a pure
// function: answers is read, never modified. An empty question list yields
// a zero Result with no categories and no insights.
func Score(strategy bank.Strategy, questions []bank.Question, answers map[string]string) Result {
	if len(questions) == 0 {
		return Result{}
	}
	if strategy == bank.StrategyPreference {
		return scorePreference(questions, answers)
	}
	return scoreCorrectness(questions, answers)
}

// tally accumulates per-category counts in first-seen order.
type tally struct {
	order []string
	sum   map[string]int
	count map[string]int
}

func newTally() *tally {
	return &tally{sum: make(map[string]int), count: make(map[string]int)}
}

func (t *tally) add(category string, value int) {
	if _, ok := t.count[category]; !ok {
		t.order = append(t.order, category)
	}
	t.count[category]++
	t.sum[category] += value
}

func scoreCorrectness(questions []bank.Question, answers map[string]string) Result {
	correct := 0
	t := newTally()
	for _, q := range questions {
		hit := 0
		if q.HasCorrectAnswer() && answers[q.ID] == q.CorrectAnswer {
			hit = 1
			correct++
		}
		t.add(q.Category, hit)
	}

	res := Result{OverallScore: roundRatio(100*correct, len(questions))}
	for _, c := range t.order {
		res.CategoryScores = append(res.CategoryScores, CategoryScore{
			Category: c,
			Score:    roundRatio(100*t.sum[c], t.count[c]),
		})
	}

	res.Insights = []string{
		fmt.Sprintf("You answered %d out of %d questions correctly.", correct, len(questions)),
		fmt.Sprintf("Your strongest area is %s.", orNA(res.Highest())),
		performanceRemark(res.OverallScore),
	}
	return res
}

func scorePreference(questions []bank.Question, answers map[string]string) Result {
	t := newTally()
	for _, q := range questions {
		t.add(q.Category, RatingValue(answers[q.ID]))
	}

	var res Result
	total := 0
	for _, c := range t.order {
		// average/5*100 == sum*20/count
		pct := roundRatio(20*t.sum[c], t.count[c])
		total += pct
		res.CategoryScores = append(res.CategoryScores, CategoryScore{Category: c, Score: pct})
	}
	res.OverallScore = roundRatio(total, len(t.order))

	res.Insights = []string{
		"Your personality profile has been analyzed across multiple dimensions.",
		fmt.Sprintf("Your highest trait is %s.", orNA(res.Highest())),
		"This assessment provides insights into your behavioral preferences and work style.",
	}
	return res
}

// RatingValue maps a rating label to 1-5. Unknown or empty answers map to 0.
func RatingValue(answer string) int {
	for i, label := range bank.RatingLabels {
		if answer == label {
			return i + 1
		}
	}
	return 0
}

func performanceRemark(score int) string {
	switch {
	case score >= 80:
		return "Excellent performance! You demonstrate strong capabilities in this area."
	case score >= 60:
		return "Good performance with room for improvement in some areas."
	default:
		return "Consider additional practice and study to improve your performance."
	}
}

// roundRatio returns num/den rounded half up. num must be >= 0 and den > 0.
func roundRatio(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
