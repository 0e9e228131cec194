package store

import (
	"context"
	"time"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	Limit        int       // max results (0 = unlimited)
	AssessmentID string    // only this assessment ("" = all)
	From         time.Time // ended_at >= From
	To           time.Time // ended_at <= To
}

// CategoryScore is one category percentage of a saved attempt.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Attempt is a completed, scored assessment session.
type Attempt struct {
	ID             int64
	Sequence       int64
	SessionID      string
	AssessmentID   string
	Title          string
	StartedAt      time.Time
	EndedAt        time.Time
	DurationSecs   int
	OverallScore   int
	CategoryScores []CategoryScore
	Answered       int
	Total          int
	Reason         string
}

// AssessmentStats aggregates attempts of one assessment.
type AssessmentStats struct {
	AssessmentID string
	Title        string
	Attempts     int
	AverageScore int
	BestScore    int
	LastScore    int
}

// Stats aggregates all saved attempts.
type Stats struct {
	TotalAttempts int
	AverageScore  int
	TotalSeconds  int
	ByAssessment  []AssessmentStats
}

// AttemptRepo persists completed attempts.
type AttemptRepo interface {
	// SaveAttempt appends a completed attempt and fills in its ID and Sequence.
	SaveAttempt(ctx context.Context, a *Attempt) error

	// QueryAttempts returns attempts newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// Stats returns aggregates over all attempts.
	Stats(ctx context.Context) (Stats, error)
}
