package matching

// SkillOverlap returns the Jaccard index of two skill sets.
//
// Either side being empty yields 0.0: no evidence means no match, which is
// distinct from two populated sets that happen to be disjoint. Inputs are
// expected pre-lowercased; duplicates are collapsed.
func SkillOverlap(resumeSkills, jobSkills []string) float64 {
	rs := toSet(resumeSkills)
	js := toSet(jobSkills)
	if len(rs) == 0 || len(js) == 0 {
		return 0.0
	}

	inter := 0
	for s := range rs {
		if _, ok := js[s]; ok {
			inter++
		}
	}
	union := len(rs) + len(js) - inter
	return float64(inter) / float64(union)
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}
