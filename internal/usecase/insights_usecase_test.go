package usecase

import (
	"context"
	"testing"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/matching"
	"resume-match/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCourseRepo struct {
	catalog matching.Catalog
	err     error
}

func (m *mockCourseRepo) Catalog(context.Context) (matching.Catalog, error) {
	return m.catalog, m.err
}

func insightsJobs() []job.Job {
	return []job.Job{
		jobWith("Data Engineer", []string{"python", "aws"}, []float64{1, 0, 0}, nil),
		jobWith("ML Engineer", []string{"python", "machine learning", "aws"}, []float64{1, 0, 0}, nil),
		jobWith("Analyst", []string{"sql", "aws"}, []float64{1, 0, 0}, nil),
	}
}

func TestInsightsUsecase_SkillGapReport_CountsAndOrders(t *testing.T) {
	uc := NewInsightsUsecase(
		&mockResumeRepo{res: testResume()},
		&mockJobRepo{jobs: insightsJobs()},
		&mockCourseRepo{},
		nil,
		zap.NewNop(),
	)

	gaps, err := uc.SkillGapReport(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, gaps, 2)

	// aws appears in three postings, machine learning in one; the resume
	// skills python and sql never show up as gaps.
	assert.Equal(t, matching.SkillGap{Skill: "aws", Count: 3}, gaps[0])
	assert.Equal(t, matching.SkillGap{Skill: "machine learning", Count: 1}, gaps[1])
}

func TestInsightsUsecase_SkillGapReport_ResumeNotFound(t *testing.T) {
	uc := NewInsightsUsecase(
		&mockResumeRepo{err: repository.ErrResumeNotFound},
		&mockJobRepo{},
		&mockCourseRepo{},
		nil,
		zap.NewNop(),
	)

	_, err := uc.SkillGapReport(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestInsightsUsecase_SkillGapReport_UsesCache(t *testing.T) {
	resumeRepo := &mockResumeRepo{res: testResume()}
	cache := newFakeCache()

	uc := NewInsightsUsecase(resumeRepo, &mockJobRepo{jobs: insightsJobs()}, &mockCourseRepo{}, cache, zap.NewNop())

	resumeID := uuid.New()

	first, err := uc.SkillGapReport(context.Background(), resumeID)
	require.NoError(t, err)
	require.Equal(t, 1, resumeRepo.calls)

	second, err := uc.SkillGapReport(context.Background(), resumeID)
	require.NoError(t, err)
	assert.Equal(t, 1, resumeRepo.calls)
	assert.Equal(t, first, second)
}

func TestInsightsUsecase_CourseRecommendations(t *testing.T) {
	catalog := matching.Catalog{
		"aws":              {"AWS Certified Solutions Architect (Coursera)"},
		"machine learning": {"Machine Learning by Andrew Ng (Coursera)"},
	}

	uc := NewInsightsUsecase(
		&mockResumeRepo{res: testResume()},
		&mockJobRepo{jobs: insightsJobs()},
		&mockCourseRepo{catalog: catalog},
		nil,
		zap.NewNop(),
	)

	suggestions, err := uc.CourseRecommendations(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "aws", suggestions[0].Skill)
	assert.Equal(t, "machine learning", suggestions[1].Skill)
}

func TestInsightsUsecase_CourseRecommendations_NoCatalogMatch(t *testing.T) {
	uc := NewInsightsUsecase(
		&mockResumeRepo{res: testResume()},
		&mockJobRepo{jobs: insightsJobs()},
		&mockCourseRepo{catalog: matching.Catalog{"kubernetes": {"Some Course"}}},
		nil,
		zap.NewNop(),
	)

	suggestions, err := uc.CourseRecommendations(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
