package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/resume"
)

func TestScoreJobs_EndToEndScenario(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	postedToday := now
	postedOld := now.AddDate(0, 0, -60)

	r := resume.Resume{
		ID:        uuid.New(),
		Skills:    []string{"python", "sql"},
		Embedding: []float64{1, 0, 0},
	}

	jobA := job.Job{
		ID:             uuid.New(),
		Title:          "Data Engineer",
		Company:        "Acme",
		RequiredSkills: []string{"python", "sql", "aws"},
		Embedding:      []float64{1, 0, 0},
		PostedAt:       &postedToday,
	}
	jobB := job.Job{
		ID:             uuid.New(),
		Title:          "Java Developer",
		Company:        "Globex",
		RequiredSkills: []string{"java"},
		Embedding:      []float64{0, 1, 0},
		PostedAt:       &postedOld,
	}

	results, stats := ScoreJobs(r, []job.Job{jobA, jobB}, now, DefaultPopularity)
	require.Len(t, results, 2)
	assert.Equal(t, 2, stats.Scored)
	assert.Equal(t, 0, stats.SkippedNoEmbedding)

	a, b := results[0], results[1]
	assert.InDelta(t, 1.0, a.SemanticSimilarity, 1e-9)
	assert.InDelta(t, 2.0/3.0, a.KeywordOverlap, 1e-9)
	assert.InDelta(t, 1.0, a.Recency, 1e-6)

	assert.InDelta(t, 0.0, b.SemanticSimilarity, 1e-9)
	assert.Equal(t, 0.0, b.KeywordOverlap)
	assert.InDelta(t, 0.135, b.Recency, 1e-3)

	assert.Greater(t, a.Score, b.Score)

	ranked := Rank(results, 10)
	assert.Equal(t, jobA.ID, ranked[0].JobID)
}

func TestScoreJobs_SkipsJobsWithoutEmbedding(t *testing.T) {
	now := time.Now()
	r := resume.Resume{Skills: []string{"go"}, Embedding: []float64{1, 0}}

	jobs := []job.Job{
		{ID: uuid.New(), RequiredSkills: []string{"go"}, Embedding: []float64{1, 0}},
		{ID: uuid.New(), RequiredSkills: []string{"go"}},
	}

	results, stats := ScoreJobs(r, jobs, now, DefaultPopularity)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, stats.Scored)
	assert.Equal(t, 1, stats.SkippedNoEmbedding)
}

func TestScoreJobs_EmptyCorpus(t *testing.T) {
	r := resume.Resume{Embedding: []float64{1}}
	results, stats := ScoreJobs(r, nil, time.Now(), DefaultPopularity)
	assert.Empty(t, results)
	assert.Equal(t, Stats{}, stats)
}

func TestScoreJobs_AllJobsLackEmbeddings(t *testing.T) {
	r := resume.Resume{Embedding: []float64{1}}
	jobs := []job.Job{{ID: uuid.New()}, {ID: uuid.New()}}

	results, stats := ScoreJobs(r, jobs, time.Now(), DefaultPopularity)
	assert.Empty(t, results)
	assert.Equal(t, 2, stats.SkippedNoEmbedding)
}

func TestScoreJobs_CountsDimensionMismatches(t *testing.T) {
	now := time.Now()
	r := resume.Resume{Embedding: []float64{1, 0, 0}}

	jobs := []job.Job{
		{ID: uuid.New(), Embedding: []float64{1, 0, 0}},
		{ID: uuid.New(), Embedding: []float64{1, 0}},
		{ID: uuid.New(), Embedding: []float64{1, 0, 0, 0, 0}},
	}

	results, stats := ScoreJobs(r, jobs, now, DefaultPopularity)
	assert.Len(t, results, 3)
	assert.Equal(t, 2, stats.DimensionMismatches)
}

func TestScoreJobs_ExplanationAttached(t *testing.T) {
	now := time.Now()
	r := resume.Resume{Skills: []string{"python"}, Embedding: []float64{1}}
	j := job.Job{ID: uuid.New(), RequiredSkills: []string{"python", "aws"}, Embedding: []float64{1}}

	results, _ := ScoreJobs(r, []job.Job{j}, now, DefaultPopularity)
	assert.Contains(t, results[0].Explanation, "Common: python")
	assert.Contains(t, results[0].Explanation, "Learn: aws")
}
