package matching

// Weights of the hybrid relevance score. They sum to 1.0: semantic fit
// dominates, explicit skill overlap is secondary, recency and popularity
// act as tie-breakers.
const (
	WeightSemantic   = 0.55
	WeightKeyword    = 0.25
	WeightRecency    = 0.10
	WeightPopularity = 0.10
)

// DefaultPopularity is the placeholder value supplied while no real
// popularity signal exists. It stays an explicit parameter of FinalScore
// so a future signal can be swapped in without changing the contract.
const DefaultPopularity = 0.5

// FinalScore combines the per-signal scores into one relevance score.
// It is monotonic non-decreasing in every argument.
func FinalScore(sem, kw, rec, pop float64) float64 {
	return WeightSemantic*sem + WeightKeyword*kw + WeightRecency*rec + WeightPopularity*pop
}
