package matching

// Catalog maps a lowercase skill to advisory course names. The catalog is
// static configuration loaded at startup (seeded into Postgres and read
// back); this package never fetches it.
type Catalog map[string][]string

// RecommendCourses flattens the catalog lookup for each missing skill into
// (skill, course) pairs, preserving the input skill order. Skills without
// a catalog entry are silently omitted; the catalog is advisory, not a
// contract.
func RecommendCourses(missingSkills []string, catalog Catalog) []CourseSuggestion {
	out := make([]CourseSuggestion, 0)
	for _, skill := range missingSkills {
		for _, course := range catalog[skill] {
			out = append(out, CourseSuggestion{Skill: skill, Course: course})
		}
	}
	return out
}
