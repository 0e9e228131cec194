package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/assessiz/internal/scoring"
	"github.com/abhisek/assessiz/internal/store"
)

// Summary holds the data displayed on the results screen and saved to
// history.
type Summary struct {
	SessionID    string
	AssessmentID string
	Title        string
	StartedAt    time.Time
	EndedAt      time.Time
	DurationSecs int
	Answered     int
	Total        int
	Reason       Reason
	Result       scoring.Result
}

// BuildSummary creates a Summary from a completed session. Returns nil if
// the session has not completed.
func BuildSummary(s *Session) *Summary {
	if s == nil || !s.Completed() || s.result == nil {
		return nil
	}
	return &Summary{
		SessionID:    s.id,
		AssessmentID: s.assessmentID,
		Title:        s.title,
		StartedAt:    s.startedAt,
		EndedAt:      s.endedAt,
		DurationSecs: s.Elapsed(),
		Answered:     len(s.answers),
		Total:        len(s.questions),
		Reason:       s.reason,
		Result:       *s.result,
	}
}

// Attempt converts the summary to its history record.
func (sum *Summary) Attempt() *store.Attempt {
	scores := make([]store.CategoryScore, 0, len(sum.Result.CategoryScores))
	for _, cs := range sum.Result.CategoryScores {
		scores = append(scores, store.CategoryScore{Category: cs.Category, Score: cs.Score})
	}
	return &store.Attempt{
		SessionID:      sum.SessionID,
		AssessmentID:   sum.AssessmentID,
		Title:          sum.Title,
		StartedAt:      sum.StartedAt,
		EndedAt:        sum.EndedAt,
		DurationSecs:   sum.DurationSecs,
		OverallScore:   sum.Result.OverallScore,
		CategoryScores: scores,
		Answered:       sum.Answered,
		Total:          sum.Total,
		Reason:         string(sum.Reason),
	}
}

// Save appends the summary to history.
func Save(ctx context.Context, repo store.AttemptRepo, sum *Summary) error {
	if repo == nil || sum == nil {
		return nil
	}
	if err := repo.SaveAttempt(ctx, sum.Attempt()); err != nil {
		return fmt.Errorf("save session %s: %w", sum.SessionID, err)
	}
	return nil
}
