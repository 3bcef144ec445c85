package matching

import (
	"sort"

	"resume-match/internal/domain/job"
)

// SkillGaps aggregates how often each skill the resume lacks appears
// across the job corpus. A skill counts once per job that requires it, so
// a skill demanded by many postings ranks high. Ordering is descending by
// count, ties kept in first-seen corpus order. An empty corpus yields an
// empty report.
func SkillGaps(jobs []job.Job, resumeSkills []string) []SkillGap {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, j := range jobs {
		for _, s := range j.RequiredSkills {
			if s == "" {
				continue
			}
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
	}

	have := toSet(resumeSkills)
	gaps := make([]SkillGap, 0, len(order))
	for _, s := range order {
		if _, ok := have[s]; ok {
			continue
		}
		gaps = append(gaps, SkillGap{Skill: s, Count: counts[s]})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Count > gaps[j].Count
	})
	return gaps
}

// MissingSkills returns the deduplicated, alphabetically sorted skills the
// corpus demands that the resume lacks. This is the input shape the course
// recommender expects.
func MissingSkills(jobs []job.Job, resumeSkills []string) []string {
	have := toSet(resumeSkills)
	seen := make(map[string]struct{})
	missing := make([]string, 0)

	for _, j := range jobs {
		for _, s := range j.RequiredSkills {
			if s == "" {
				continue
			}
			if _, ok := have[s]; ok {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			missing = append(missing, s)
		}
	}

	sort.Strings(missing)
	return missing
}
