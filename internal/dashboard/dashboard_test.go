package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/assessiz/internal/store"
)

func TestBuild_SampleFallback(t *testing.T) {
	sum := Build(store.Stats{}, nil)

	assert.True(t, sum.Sample)
	assert.Equal(t, 86, sum.AverageScore) // 343/4 = 85.75
	assert.Equal(t, 4, sum.TotalAttempts)
	assert.Equal(t, 77, sum.TotalMinutes)
	assert.Len(t, sum.Recent, 4)
	assert.Empty(t, sum.Categories)
	assert.Len(t, sum.Skills, 5)
	assert.Len(t, sum.Recommendations, 3)
}

func TestBuild_FromHistory(t *testing.T) {
	now := time.Now()
	attempts := []store.Attempt{
		{AssessmentID: "aptitude", Title: "Aptitude Test", EndedAt: now, DurationSecs: 90, OverallScore: 100,
			CategoryScores: []store.CategoryScore{{Category: "Verbal Reasoning", Score: 100}, {Category: "Mathematical Reasoning", Score: 100}}},
		{AssessmentID: "aptitude", Title: "Aptitude Test", EndedAt: now.Add(-time.Hour), DurationSecs: 29, OverallScore: 50,
			CategoryScores: []store.CategoryScore{{Category: "Verbal Reasoning", Score: 0}, {Category: "Mathematical Reasoning", Score: 100}}},
	}
	stats := store.Stats{TotalAttempts: 2, AverageScore: 75, TotalSeconds: 119}

	sum := Build(stats, attempts)

	assert.False(t, sum.Sample)
	assert.Equal(t, 75, sum.AverageScore)
	assert.Equal(t, 2, sum.TotalAttempts)
	assert.Equal(t, 2, sum.TotalMinutes)
	require.Len(t, sum.Recent, 2)
	assert.Equal(t, 2, sum.Recent[0].Minutes)
	assert.Equal(t, 0, sum.Recent[1].Minutes)
	assert.Equal(t, []CategoryAverage{
		{Category: "Verbal Reasoning", Average: 50, Samples: 2},
		{Category: "Mathematical Reasoning", Average: 100, Samples: 2},
	}, sum.Categories)
}

func TestBuild_RecentLimit(t *testing.T) {
	attempts := make([]store.Attempt, RecentLimit+5)
	for i := range attempts {
		attempts[i] = store.Attempt{AssessmentID: "skills", OverallScore: i}
	}
	sum := Build(store.Stats{TotalAttempts: len(attempts)}, attempts)
	assert.Len(t, sum.Recent, RecentLimit)
}

func TestLoad(t *testing.T) {
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	repo := st.AttemptRepo()
	ctx := context.Background()

	sum, err := Load(ctx, repo)
	require.NoError(t, err)
	assert.True(t, sum.Sample)

	require.NoError(t, repo.SaveAttempt(ctx, &store.Attempt{
		SessionID: "s1", AssessmentID: "cognitive", Title: "Cognitive Assessment",
		StartedAt: time.Now().Add(-5 * time.Minute), EndedAt: time.Now(),
		DurationSecs: 300, OverallScore: 67,
		CategoryScores: []store.CategoryScore{{Category: "Pattern Recognition", Score: 100}},
	}))

	sum, err = Load(ctx, repo)
	require.NoError(t, err)
	assert.False(t, sum.Sample)
	assert.Equal(t, 67, sum.AverageScore)
	assert.Equal(t, 5, sum.TotalMinutes)
	assert.Equal(t, []CategoryAverage{{Category: "Pattern Recognition", Average: 100, Samples: 1}}, sum.Categories)
}
