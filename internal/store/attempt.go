package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// attemptRepo implements AttemptRepo on plain SQL.
type attemptRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *attemptRepo) SaveAttempt(ctx context.Context, a *Attempt) error {
	if a.SessionID == "" {
		return fmt.Errorf("save attempt: empty session id")
	}

	scores := a.CategoryScores
	if scores == nil {
		scores = []CategoryScore{}
	}
	catJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal category scores: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO attempts (
		sequence, session_id, assessment_id, title, started_at, ended_at,
		duration_secs, overall_score, category_scores, answered, total, reason
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, a.SessionID, a.AssessmentID, a.Title,
		a.StartedAt.UnixMilli(), a.EndedAt.UnixMilli(),
		a.DurationSecs, a.OverallScore, string(catJSON),
		a.Answered, a.Total, a.Reason,
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("attempt id: %w", err)
	}
	a.ID = id
	a.Sequence = seqNum
	return nil
}

func (r *attemptRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	var (
		where []string
		args  []any
	)
	if opts.AssessmentID != "" {
		where = append(where, "assessment_id = ?")
		args = append(args, opts.AssessmentID)
	}
	if !opts.From.IsZero() {
		where = append(where, "ended_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "ended_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	q := `SELECT id, sequence, session_id, assessment_id, title, started_at, ended_at,
		duration_secs, overall_score, category_scores, answered, total, reason
		FROM attempts`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a              Attempt
			started, ended int64
			catJSON        string
		)
		if err := rows.Scan(&a.ID, &a.Sequence, &a.SessionID, &a.AssessmentID, &a.Title,
			&started, &ended, &a.DurationSecs, &a.OverallScore, &catJSON,
			&a.Answered, &a.Total, &a.Reason); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.StartedAt = time.UnixMilli(started)
		a.EndedAt = time.UnixMilli(ended)
		if err := json.Unmarshal([]byte(catJSON), &a.CategoryScores); err != nil {
			return nil, fmt.Errorf("unmarshal category scores for %s: %w", a.SessionID, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Stats(ctx context.Context) (Stats, error) {
	var (
		st  Stats
		avg float64
	)
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(AVG(overall_score), 0),
		COALESCE(SUM(duration_secs), 0) FROM attempts`).Scan(&st.TotalAttempts, &avg, &st.TotalSeconds)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	st.AverageScore = roundScore(avg)

	rows, err := r.db.QueryContext(ctx, `SELECT a.assessment_id, MAX(a.title), COUNT(*),
		AVG(a.overall_score), MAX(a.overall_score),
		(SELECT l.overall_score FROM attempts l WHERE l.assessment_id = a.assessment_id
			ORDER BY l.sequence DESC LIMIT 1)
		FROM attempts a
		GROUP BY a.assessment_id
		ORDER BY MIN(a.sequence)`)
	if err != nil {
		return Stats{}, fmt.Errorf("query assessment stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var as AssessmentStats
		if err := rows.Scan(&as.AssessmentID, &as.Title, &as.Attempts, &avg, &as.BestScore, &as.LastScore); err != nil {
			return Stats{}, fmt.Errorf("scan assessment stats: %w", err)
		}
		as.AverageScore = roundScore(avg)
		st.ByAssessment = append(st.ByAssessment, as)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate assessment stats: %w", err)
	}
	return st, nil
}

// roundScore rounds an averaged percentage half up.
func roundScore(v float64) int {
	return int(math.Floor(v + 0.5))
}
