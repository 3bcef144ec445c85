package matching

import "sort"

// Rank orders results by descending score and truncates to topN. Ties are
// broken by ascending job ID so repeated runs over the same corpus produce
// the same ordering. topN <= 0 yields an empty slice.
func Rank(results []MatchResult, topN int) []MatchResult {
	if topN <= 0 {
		return []MatchResult{}
	}

	ranked := make([]MatchResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].JobID.String() < ranked[j].JobID.String()
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
