package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAttempt(session, assessment string, score int, ended time.Time) *Attempt {
	return &Attempt{
		SessionID:    session,
		AssessmentID: assessment,
		Title:        assessment + " test",
		StartedAt:    ended.Add(-10 * time.Minute),
		EndedAt:      ended,
		DurationSecs: 600,
		OverallScore: score,
		CategoryScores: []CategoryScore{
			{Category: "Logic", Score: score},
			{Category: "Memory", Score: 100 - score},
		},
		Answered: 2,
		Total:    3,
		Reason:   "finished",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence %d not greater than %d", n, prev)
		}
		prev = n
	}
}

func TestSaveAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	// Empty history.
	got, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}

	base := time.Now().UTC().Truncate(time.Millisecond)
	a := testAttempt("s1", "cognitive", 67, base)
	if err := repo.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.ID == 0 || a.Sequence == 0 {
		t.Fatalf("expected id and sequence to be set, got %d/%d", a.ID, a.Sequence)
	}
	if err := repo.SaveAttempt(ctx, testAttempt("s2", "aptitude", 100, base.Add(time.Minute))); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].SessionID != "s2" {
		t.Errorf("first = %q, want newest s2", got[0].SessionID)
	}

	first := got[1]
	if !first.EndedAt.Equal(base) {
		t.Errorf("ended_at = %v, want %v", first.EndedAt, base)
	}
	if first.OverallScore != 67 || first.DurationSecs != 600 || first.Reason != "finished" {
		t.Errorf("round trip mismatch: %+v", first)
	}
	if len(first.CategoryScores) != 2 || first.CategoryScores[0].Category != "Logic" {
		t.Errorf("category scores = %+v, want Logic first", first.CategoryScores)
	}
}

func TestQueryAttemptsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, id := range []string{"cognitive", "skills", "cognitive", "cognitive"} {
		a := testAttempt(id+string(rune('a'+i)), id, 50+i, base.Add(time.Duration(i)*time.Hour))
		if err := repo.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	tests := []struct {
		name string
		opts QueryOpts
		want int
	}{
		{"all", QueryOpts{}, 4},
		{"limit", QueryOpts{Limit: 2}, 2},
		{"assessment", QueryOpts{AssessmentID: "cognitive"}, 3},
		{"from", QueryOpts{From: base.Add(2 * time.Hour)}, 2},
		{"to", QueryOpts{To: base.Add(time.Hour)}, 2},
		{"assessment and limit", QueryOpts{AssessmentID: "cognitive", Limit: 1}, 1},
	}
	for _, tt := range tests {
		got, err := repo.QueryAttempts(ctx, tt.opts)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("%s: len = %d, want %d", tt.name, len(got), tt.want)
		}
	}
}

func TestSaveAttemptDuplicateSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	now := time.Now()
	if err := repo.SaveAttempt(ctx, testAttempt("dup", "skills", 10, now)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveAttempt(ctx, testAttempt("dup", "skills", 10, now)); err == nil {
		t.Fatal("expected error saving the same session twice")
	}
	if err := repo.SaveAttempt(ctx, &Attempt{}); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	st, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if st.TotalAttempts != 0 || st.AverageScore != 0 || len(st.ByAssessment) != 0 {
		t.Fatalf("empty stats = %+v", st)
	}

	base := time.Now()
	for i, sc := range []struct {
		id    string
		score int
	}{
		{"cognitive", 80}, {"aptitude", 55}, {"cognitive", 91},
	} {
		if err := repo.SaveAttempt(ctx, testAttempt(string(rune('a'+i)), sc.id, sc.score, base)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	st, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", st.TotalAttempts)
	}
	if st.AverageScore != 75 { // 226/3 = 75.33
		t.Errorf("AverageScore = %d, want 75", st.AverageScore)
	}
	if st.TotalSeconds != 1800 {
		t.Errorf("TotalSeconds = %d, want 1800", st.TotalSeconds)
	}
	if len(st.ByAssessment) != 2 {
		t.Fatalf("ByAssessment len = %d, want 2", len(st.ByAssessment))
	}
	cog := st.ByAssessment[0]
	if cog.AssessmentID != "cognitive" || cog.Attempts != 2 || cog.AverageScore != 86 || cog.BestScore != 91 || cog.LastScore != 91 {
		t.Errorf("cognitive stats = %+v", cog)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("ASSESSIZ_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("path = %q", p)
	}

	t.Setenv("ASSESSIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "assessiz", "assessiz.db") {
		t.Errorf("path = %q", p)
	}
}
