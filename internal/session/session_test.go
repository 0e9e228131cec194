package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/store"
)

// countingObserver records lifecycle callbacks.
type countingObserver struct {
	started   int
	answers   int
	completed int
	reasons   []string
}

func (o *countingObserver) SessionStarted(string) { o.started++ }
func (o *countingObserver) AnswerRecorded(string) { o.answers++ }
func (o *countingObserver) SessionCompleted(_ string, reason string, _ int) {
	o.completed++
	o.reasons = append(o.reasons, reason)
}

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testRunner(obs Observer, opts ...Option) *Runner {
	opts = append([]Option{
		WithObserver(obs),
		WithClock(func() time.Time { return testNow }),
	}, opts...)
	return NewRunner(bank.Default(), opts...)
}

func mustStart(t *testing.T, r *Runner, id string) *Session {
	t.Helper()
	s, err := r.Start(id)
	if err != nil {
		t.Fatalf("Start(%q): %v", id, err)
	}
	return s
}

func TestStart_Initial(t *testing.T) {
	obs := &countingObserver{}
	s := mustStart(t, testRunner(obs), "cognitive")

	if s.Phase() != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress", s.Phase())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if s.TimeRemaining() != DefaultTimeLimit {
		t.Errorf("TimeRemaining = %d, want %d", s.TimeRemaining(), DefaultTimeLimit)
	}
	if s.Answered() != 0 {
		t.Errorf("Answered = %d, want 0", s.Answered())
	}
	if s.ID() == "" {
		t.Error("expected a session id")
	}
	if s.Result() != nil {
		t.Error("expected no result before completion")
	}
	if s.Title() != "Cognitive Assessment" {
		t.Errorf("Title = %q", s.Title())
	}
	if !s.StartedAt().Equal(testNow) {
		t.Errorf("StartedAt = %v, want %v", s.StartedAt(), testNow)
	}
	if obs.started != 1 {
		t.Errorf("started = %d, want 1", obs.started)
	}
}

func TestStart_NotFound(t *testing.T) {
	src := bank.Default().With([]bank.Assessment{{ID: "empty", Title: "Empty"}})
	r := NewRunner(src)

	for _, id := range []string{"nonexistent", "", "empty"} {
		_, err := r.Start(id)
		if !errors.Is(err, bank.ErrNotFound) {
			t.Errorf("Start(%q) err = %v, want ErrNotFound", id, err)
		}
	}
}

func TestStart_DistinctIDs(t *testing.T) {
	r := NewRunner(bank.Default())
	a := mustStart(t, r, "skills")
	b := mustStart(t, r, "skills")
	if a.ID() == b.ID() {
		t.Errorf("expected distinct session ids, both %q", a.ID())
	}
}

func TestRecordAnswer(t *testing.T) {
	obs := &countingObserver{}
	s := mustStart(t, testRunner(obs), "aptitude")

	if err := s.RecordAnswer("1", "50 mph"); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if err := s.RecordAnswer("1", "60 mph"); err != nil {
		t.Fatalf("RecordAnswer overwrite: %v", err)
	}
	if got, _ := s.Answer("1"); got != "60 mph" {
		t.Errorf("Answer(1) = %q, want overwrite", got)
	}
	if s.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Answered())
	}

	// Values are not checked against options.
	if err := s.RecordAnswer("2", "not an option"); err != nil {
		t.Errorf("RecordAnswer free text: %v", err)
	}

	err := s.RecordAnswer("99", "x")
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown question err = %v, want ErrUnknownQuestion", err)
	}
	if s.Answered() > s.Len() {
		t.Errorf("Answered %d exceeds Len %d", s.Answered(), s.Len())
	}
	if obs.answers != 3 {
		t.Errorf("answers = %d, want 3", obs.answers)
	}
}

func TestAnswersReturnsCopy(t *testing.T) {
	s := mustStart(t, testRunner(nil), "aptitude")
	_ = s.RecordAnswer("1", "60 mph")

	m := s.Answers()
	delete(m, "1")
	if _, ok := s.Answer("1"); !ok {
		t.Error("mutating Answers() leaked into the session")
	}
}

func TestRecordAnswer_NotStarted(t *testing.T) {
	var s Session
	if err := s.RecordAnswer("1", "x"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("err = %v, want ErrNotStarted", err)
	}
	// Navigation on a zero session is a no-op.
	s.Advance()
	s.Retreat()
	s.Tick()
	if s.Phase() != PhaseNotStarted {
		t.Errorf("Phase = %v, want not-started", s.Phase())
	}
}

func TestAdvanceRetreat(t *testing.T) {
	s := mustStart(t, testRunner(nil), "cognitive") // 3 questions

	s.Retreat()
	if s.Index() != 0 {
		t.Errorf("Retreat at 0: Index = %d", s.Index())
	}

	s.Advance()
	s.Advance()
	if s.Index() != 2 || !s.IsLast() {
		t.Fatalf("Index = %d, want last (2)", s.Index())
	}
	if s.Completed() {
		t.Fatal("reaching the last question must not complete")
	}

	s.Retreat()
	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
	if s.Current().ID != "2" {
		t.Errorf("Current = %q, want 2", s.Current().ID)
	}
}

func TestAdvanceFromLastCompletes(t *testing.T) {
	obs := &countingObserver{}
	s := mustStart(t, testRunner(obs), "skills")

	for !s.Completed() {
		s.Advance()
	}
	if s.Reason() != ReasonFinished {
		t.Errorf("Reason = %q, want finished", s.Reason())
	}
	if s.Result() == nil {
		t.Fatal("expected a result")
	}
	if err := s.RecordAnswer("1", "x"); !errors.Is(err, ErrCompleted) {
		t.Errorf("RecordAnswer after completion err = %v, want ErrCompleted", err)
	}

	idx := s.Index()
	remaining := s.TimeRemaining()
	s.Advance()
	s.Retreat()
	s.Tick()
	if s.Index() != idx || s.TimeRemaining() != remaining {
		t.Error("completed session changed after further operations")
	}
	if obs.completed != 1 {
		t.Errorf("completed = %d, want exactly 1", obs.completed)
	}
}

func TestTickExpiresExactlyOnce(t *testing.T) {
	obs := &countingObserver{}
	s := mustStart(t, testRunner(obs), "personality")

	for i := 0; i < DefaultTimeLimit-1; i++ {
		s.Tick()
	}
	if s.Completed() {
		t.Fatal("completed before the budget ran out")
	}
	if s.TimeRemaining() != 1 {
		t.Fatalf("TimeRemaining = %d, want 1", s.TimeRemaining())
	}

	s.Tick()
	if !s.Completed() || s.Reason() != ReasonTimeExpired {
		t.Fatalf("Completed = %v, Reason = %q; want time-expired", s.Completed(), s.Reason())
	}
	if s.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d, want 0", s.TimeRemaining())
	}

	s.Tick()
	s.Advance()
	if obs.completed != 1 {
		t.Errorf("completed = %d, want exactly 1", obs.completed)
	}
	if s.Result().OverallScore != 0 {
		t.Errorf("unanswered session scored %d, want 0", s.Result().OverallScore)
	}
}

func TestTimeRemainingNeverIncreases(t *testing.T) {
	s := mustStart(t, testRunner(nil, WithTimeLimit(5)), "cognitive")
	prev := s.TimeRemaining()
	for i := 0; i < 10; i++ {
		s.Tick()
		if s.TimeRemaining() > prev {
			t.Fatalf("TimeRemaining increased from %d to %d", prev, s.TimeRemaining())
		}
		prev = s.TimeRemaining()
	}
	if !s.Completed() {
		t.Error("expected completion after the 5s budget")
	}
	if s.Elapsed() != 5 {
		t.Errorf("Elapsed = %d, want 5", s.Elapsed())
	}
}

func TestAptitudeScenario(t *testing.T) {
	s := mustStart(t, testRunner(nil), "aptitude")

	if err := s.RecordAnswer("1", "60 mph"); err != nil {
		t.Fatal(err)
	}
	s.Advance()
	if err := s.RecordAnswer("2", "Garage"); err != nil {
		t.Fatal(err)
	}
	s.Advance()

	if !s.Completed() {
		t.Fatal("expected completion")
	}
	res := s.Result()
	if res.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", res.OverallScore)
	}
	if len(res.CategoryScores) != 2 {
		t.Fatalf("categories = %d, want 2", len(res.CategoryScores))
	}
	for _, cs := range res.CategoryScores {
		if cs.Score != 100 {
			t.Errorf("%s = %d, want 100", cs.Category, cs.Score)
		}
	}
}

func TestProgressAndClock(t *testing.T) {
	s := mustStart(t, testRunner(nil), "cognitive")
	if got := s.ProgressPercent(); got != 33 {
		t.Errorf("ProgressPercent = %d, want 33", got)
	}
	s.Advance()
	s.Advance()
	if got := s.ProgressPercent(); got != 100 {
		t.Errorf("ProgressPercent = %d, want 100", got)
	}

	tests := []struct {
		secs int
		want string
	}{
		{1800, "30:00"},
		{65, "1:05"},
		{9, "0:09"},
		{0, "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestBuildSummaryAndSave(t *testing.T) {
	s := mustStart(t, testRunner(nil), "aptitude")
	if BuildSummary(s) != nil {
		t.Fatal("expected nil summary before completion")
	}

	_ = s.RecordAnswer("1", "60 mph")
	s.Tick()
	s.Tick()
	s.Advance()
	s.Advance()

	sum := BuildSummary(s)
	if sum == nil {
		t.Fatal("expected summary")
	}
	if sum.DurationSecs != 2 || sum.Answered != 1 || sum.Total != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Result.OverallScore != 50 {
		t.Errorf("OverallScore = %d, want 50", sum.Result.OverallScore)
	}

	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	repo := st.AttemptRepo()
	if err := Save(ctx, repo, sum); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.QueryAttempts(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != s.ID() || got[0].Reason != "finished" {
		t.Errorf("saved attempts = %+v", got)
	}
	if len(got[0].CategoryScores) != 2 {
		t.Errorf("category scores = %+v", got[0].CategoryScores)
	}
}
