package resume

import (
	"time"

	"github.com/google/uuid"
)

// Resume is produced by the ingestion pipeline and consumed read-only here.
// Skills are lowercased by the extractor; Embedding comes from the external
// vectorizer and its length is whatever that vectorizer was fit with.
type Resume struct {
	ID         uuid.UUID
	Skills     []string
	Embedding  []float64
	Summary    string
	UploadedAt time.Time
}
