package matching

import (
	"fmt"
	"sort"
	"strings"
)

// maxMissingInExplanation caps how many missing skills the rationale lists.
const maxMissingInExplanation = 5

// Explain renders a human-readable rationale for a score: the score itself,
// the shared skills, and up to five skills the job asks for that the
// resume lacks. Deterministic for identical inputs; it never influences
// ranking.
func Explain(resumeSkills, jobSkills []string, score float64) string {
	rs := toSet(resumeSkills)
	js := toSet(jobSkills)

	var common, missing []string
	for s := range js {
		if _, ok := rs[s]; ok {
			common = append(common, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(common)
	sort.Strings(missing)
	if len(missing) > maxMissingInExplanation {
		missing = missing[:maxMissingInExplanation]
	}

	parts := []string{fmt.Sprintf("Score: %.2f", score)}
	if len(common) > 0 {
		parts = append(parts, "Common: "+strings.Join(common, ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "Learn: "+strings.Join(missing, ", "))
	}
	return strings.Join(parts, " | ")
}
