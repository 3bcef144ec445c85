package matching

import (
	"time"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/resume"
)

// ScoreJobs runs the full per-job pipeline for one resume: semantic
// similarity, skill overlap, recency decay, weighted aggregation, and the
// explanation. Jobs without an embedding are skipped entirely rather than
// scored as zero, since a missing vector is absent data, not a poor match.
//
// The pass is a pure fold: no I/O, no shared state, and the clock is an
// argument. Output order follows input order; ranking is Rank's job.
func ScoreJobs(r resume.Resume, jobs []job.Job, now time.Time, pop float64) ([]MatchResult, Stats) {
	var stats Stats
	results := make([]MatchResult, 0, len(jobs))

	for _, j := range jobs {
		if !j.HasEmbedding() {
			stats.SkippedNoEmbedding++
			continue
		}
		if len(r.Embedding) > 0 && len(j.Embedding) != len(r.Embedding) {
			stats.DimensionMismatches++
		}

		sem := Cosine(r.Embedding, j.Embedding)
		kw := SkillOverlap(r.Skills, j.RequiredSkills)
		rec := RecencyWeight(j.PostedAt, now)
		score := FinalScore(sem, kw, rec, pop)

		results = append(results, MatchResult{
			JobID:              j.ID,
			Title:              j.Title,
			Company:            j.Company,
			Location:           j.Location,
			URL:                j.URL,
			Score:              score,
			SemanticSimilarity: sem,
			KeywordOverlap:     kw,
			Recency:            rec,
			Popularity:         pop,
			Explanation:        Explain(r.Skills, j.RequiredSkills, score),
		})
		stats.Scored++
	}

	return results, stats
}
