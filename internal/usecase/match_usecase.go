package usecase

import (
	"context"
	"errors"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/domain/matching"
	"resume-match/internal/repository"
	"resume-match/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrInternal       = errors.New("internal error")
)

type MatchUsecase interface {
	TopMatches(ctx context.Context, resumeID uuid.UUID, topN int) ([]matching.MatchResult, error)
}

type Match struct {
	resumes repository.ResumeRepository
	jobs    repository.JobRepository
	cache   MatchCache
	logger  *zap.Logger
	cfg     config.MatchConfig

	// now is swapped in tests; the scoring pass itself never reads the
	// ambient clock.
	now func() time.Time
}

func NewMatchUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	cache MatchCache,
	logger *zap.Logger,
	cfg config.MatchConfig,
) *Match {
	return &Match{
		resumes: resumes,
		jobs:    jobs,
		cache:   cache,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

// TopMatches scores the whole job corpus against one resume and returns
// the topN ranked results. An empty corpus (or one where no job carries an
// embedding) is a valid outcome and yields an empty list, not an error.
func (u *Match) TopMatches(ctx context.Context, resumeID uuid.UUID, topN int) ([]matching.MatchResult, error) {
	if resumeID == uuid.Nil {
		return nil, ErrResumeNotFound
	}

	if topN <= 0 {
		topN = u.cfg.DefaultTopN
	}
	if u.cfg.MaxTopN > 0 && topN > u.cfg.MaxTopN {
		topN = u.cfg.MaxTopN
	}

	key := matchesCacheKey(resumeID, topN)
	if u.cache != nil {
		var cached []matching.MatchResult
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	res, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	results, stats := matching.ScoreJobs(res, jobs, u.now(), u.cfg.Popularity)

	if u.logger != nil {
		if stats.DimensionMismatches > 0 {
			u.logger.Warn("embedding dimension mismatch between resume and jobs",
				zap.String("resume_id", resumeID.String()),
				zap.Int("resume_dims", len(res.Embedding)),
				zap.Int("mismatched_jobs", stats.DimensionMismatches),
			)
		}
		if stats.SkippedNoEmbedding > 0 {
			u.logger.Debug("jobs skipped without embeddings",
				zap.Int("skipped", stats.SkippedNoEmbedding),
			)
		}
	}

	ranked := matching.Rank(results, topN)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, ranked, 0)
	}

	ws.NotifyMatchesComputed(resumeID, stats.Scored)

	return ranked, nil
}
