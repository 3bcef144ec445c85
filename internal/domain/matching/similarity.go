package matching

import "math"

// Cosine returns the cosine similarity of two embeddings.
//
// Vectors of unequal length are compared over the shorter prefix. Resume
// and job embeddings may come from vectorizers fit on different corpora,
// so the mismatch is an accepted data condition rather than an error; the
// caller is expected to flag it as a quality signal (see Stats).
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0.0
	}
	return dot / denom
}
