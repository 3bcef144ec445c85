package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a normalized posting with a pre-computed embedding. PostedAt is
// optional because many boards omit it. RequiredSkills are lowercased by
// the ingestion side. The embedding length is not guaranteed to equal a
// resume's embedding length; the matching engine tolerates the mismatch.
type Job struct {
	ID             uuid.UUID
	Title          string
	Company        string
	Location       string
	Description    string
	URL            string
	PostedAt       *time.Time
	RequiredSkills []string
	Embedding      []float64
	CreatedAt      time.Time
}

// HasEmbedding reports whether the job can participate in semantic scoring.
func (j Job) HasEmbedding() bool {
	return len(j.Embedding) > 0
}
