// Package dashboard aggregates attempt history for the dashboard view.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/assessiz/internal/store"
)

// RecentLimit is how many attempts the recent list shows.
const RecentLimit = 10

// Entry is one row of the recent attempts list.
type Entry struct {
	AssessmentID string
	Title        string
	Date         time.Time
	Score        int
	Minutes      int
}

// CategoryAverage is the mean score of a category across attempts.
type CategoryAverage struct {
	Category string
	Average  int
	Samples  int
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SkillProgress is a static skill target.
type SkillProgress struct {
	Skill       string
	Current     int
	Target      int
	Improvement string
}

// Recommendation is a static study suggestion.
type Recommendation struct {
	Title         string
	Description   string
	Priority      Priority
	EstimatedTime string
}

// Summary is everything the dashboard renders.
type Summary struct {
	// Sample is true when the figures come from demo fixtures because no
	// attempts have been recorded yet.
	Sample bool

	AverageScore  int
	TotalAttempts int
	TotalMinutes  int

	Recent     []Entry
	Categories []CategoryAverage

	Skills          []SkillProgress
	Recommendations []Recommendation
}

// Load builds a Summary from history.
func Load(ctx context.Context, repo store.AttemptRepo) (Summary, error) {
	stats, err := repo.Stats(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard stats: %w", err)
	}
	attempts, err := repo.QueryAttempts(ctx, store.QueryOpts{})
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard attempts: %w", err)
	}
	return Build(stats, attempts), nil
}

// Build assembles a Summary from aggregates and attempts (newest first).
// With no attempts it falls back to the sample history.
func Build(stats store.Stats, attempts []store.Attempt) Summary {
	sum := Summary{
		Skills:          SkillTargets(),
		Recommendations: Recommendations(),
	}

	if len(attempts) == 0 {
		sum.Sample = true
		sum.Recent = SampleHistory()
		total := 0
		for _, e := range sum.Recent {
			total += e.Score
			sum.TotalMinutes += e.Minutes
		}
		sum.TotalAttempts = len(sum.Recent)
		sum.AverageScore = roundDiv(total, len(sum.Recent))
		return sum
	}

	sum.AverageScore = stats.AverageScore
	sum.TotalAttempts = stats.TotalAttempts
	sum.TotalMinutes = roundDiv(stats.TotalSeconds, 60)

	for i, a := range attempts {
		if i == RecentLimit {
			break
		}
		sum.Recent = append(sum.Recent, Entry{
			AssessmentID: a.AssessmentID,
			Title:        a.Title,
			Date:         a.EndedAt,
			Score:        a.OverallScore,
			Minutes:      roundDiv(a.DurationSecs, 60),
		})
	}
	sum.Categories = CategoryAverages(attempts)
	return sum
}

// CategoryAverages averages category scores across attempts, in order of
// first appearance.
func CategoryAverages(attempts []store.Attempt) []CategoryAverage {
	var order []string
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range attempts {
		for _, cs := range a.CategoryScores {
			if _, ok := counts[cs.Category]; !ok {
				order = append(order, cs.Category)
			}
			totals[cs.Category] += cs.Score
			counts[cs.Category]++
		}
	}

	out := make([]CategoryAverage, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryAverage{
			Category: c,
			Average:  roundDiv(totals[c], counts[c]),
			Samples:  counts[c],
		})
	}
	return out
}

// roundDiv returns num/den rounded half up, or 0 when den is 0.
func roundDiv(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}
