package dto

import (
	"github.com/google/uuid"

	"resume-match/internal/domain/matching"
)

type MatchResponse struct {
	JobID       uuid.UUID `json:"job_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
	Score       float64   `json:"score"`
	Semantic    float64   `json:"semantic_similarity"`
	Keyword     float64   `json:"keyword_overlap"`
	Recency     float64   `json:"recency"`
	Popularity  float64   `json:"popularity"`
	Explanation string    `json:"explanation"`
}

type MatchListResponse struct {
	ResumeID uuid.UUID       `json:"resume_id"`
	Matches  []MatchResponse `json:"matches"`
}

func NewMatchListResponse(resumeID uuid.UUID, results []matching.MatchResult) MatchListResponse {
	matches := make([]MatchResponse, 0, len(results))
	for _, r := range results {
		matches = append(matches, MatchResponse{
			JobID:       r.JobID,
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.Location,
			URL:         r.URL,
			Score:       r.Score,
			Semantic:    r.SemanticSimilarity,
			Keyword:     r.KeywordOverlap,
			Recency:     r.Recency,
			Popularity:  r.Popularity,
			Explanation: r.Explanation,
		})
	}
	return MatchListResponse{ResumeID: resumeID, Matches: matches}
}
