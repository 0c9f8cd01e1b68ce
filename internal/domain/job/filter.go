package job

import "strings"

// ListFilter narrows the public job listing. Empty fields do not filter.
// Location and every skill term match as case-insensitive substrings;
// JobType and ExperienceLevel (against ExperienceRequired) match exactly.
// All provided filters must hold.
type ListFilter struct {
	Location        string
	JobType         string
	ExperienceLevel string
	Skills          []string
}

// ParseSkills splits a comma separated skills query, trimming every term and
// dropping the empty ones.
func ParseSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (f ListFilter) Matches(j Job) bool {
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.JobType != "" && string(j.JobType) != f.JobType {
		return false
	}
	if f.ExperienceLevel != "" && j.ExperienceRequired != f.ExperienceLevel {
		return false
	}
	for _, s := range f.Skills {
		if !containsFold(j.SkillsRequired, s) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
