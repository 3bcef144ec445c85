package usecase

import (
	"context"
	"errors"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/matching"
	"resume-match/internal/domain/resume"
	"resume-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InsightsUsecase covers the corpus-wide views that are independent of
// ranking: which skills the market demands that the resume lacks, and what
// courses the advisory catalog suggests for them.
type InsightsUsecase interface {
	SkillGapReport(ctx context.Context, resumeID uuid.UUID) ([]matching.SkillGap, error)
	CourseRecommendations(ctx context.Context, resumeID uuid.UUID) ([]matching.CourseSuggestion, error)
}

type Insights struct {
	resumes repository.ResumeRepository
	jobs    repository.JobRepository
	courses repository.CourseRepository
	cache   MatchCache
	logger  *zap.Logger
}

func NewInsightsUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	courses repository.CourseRepository,
	cache MatchCache,
	logger *zap.Logger,
) *Insights {
	return &Insights{resumes: resumes, jobs: jobs, courses: courses, cache: cache, logger: logger}
}

func (u *Insights) SkillGapReport(ctx context.Context, resumeID uuid.UUID) ([]matching.SkillGap, error) {
	if resumeID == uuid.Nil {
		return nil, ErrResumeNotFound
	}

	key := skillGapsCacheKey(resumeID)
	if u.cache != nil {
		var cached []matching.SkillGap
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	res, jobs, err := u.loadCorpus(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	gaps := matching.SkillGaps(jobs, res.Skills)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, gaps, 0)
	}
	return gaps, nil
}

func (u *Insights) CourseRecommendations(ctx context.Context, resumeID uuid.UUID) ([]matching.CourseSuggestion, error) {
	if resumeID == uuid.Nil {
		return nil, ErrResumeNotFound
	}

	res, jobs, err := u.loadCorpus(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	catalog, err := u.courses.Catalog(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	missing := matching.MissingSkills(jobs, res.Skills)
	return matching.RecommendCourses(missing, catalog), nil
}

func (u *Insights) loadCorpus(ctx context.Context, resumeID uuid.UUID) (resume.Resume, []job.Job, error) {
	r, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, nil, ErrResumeNotFound
		}
		return resume.Resume{}, nil, ErrInternal
	}

	js, err := u.jobs.ListAll(ctx)
	if err != nil {
		return resume.Resume{}, nil, ErrInternal
	}

	return r, js, nil
}
