package matching

import "github.com/google/uuid"

// MatchResult is the scored view of one job against one resume. It is
// ephemeral: computed per request and never persisted by this package.
type MatchResult struct {
	JobID              uuid.UUID
	Title              string
	Company            string
	Location           string
	URL                string
	Score              float64
	SemanticSimilarity float64
	KeywordOverlap     float64
	Recency            float64
	Popularity         float64
	Explanation        string
}

// Stats summarizes data-quality observations from a scoring pass. Skipped
// jobs and dimension mismatches are not errors, but callers should surface
// them: a mismatch means resume and job embeddings were not produced
// comparably.
type Stats struct {
	Scored              int
	SkippedNoEmbedding  int
	DimensionMismatches int
}

// SkillGap is one entry of a skill-gap report: a skill demanded by the
// corpus that the resume lacks, with its posting frequency.
type SkillGap struct {
	Skill string
	Count int
}

// CourseSuggestion pairs a missing skill with one advisory course name.
type CourseSuggestion struct {
	Skill  string
	Course string
}
