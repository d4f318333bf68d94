package job

import (
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Matches reports whether j satisfies every non-empty filter
func Matches(j domain.Job, f domain.JobSearchFilters) bool {
	if f.Query != "" && !matchesQuery(j, strings.ToLower(f.Query)) {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.ExperienceLevel != "" && j.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	if f.RemoteOnly && !j.Remote {
		return false
	}
	return true
}

// Filter keeps the jobs that match f, preserving order
func Filter(jobs []domain.Job, f domain.JobSearchFilters) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, f) {
			out = append(out, j)
		}
	}
	return out
}

func matchesQuery(j domain.Job, q string) bool {
	if strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Company), q) ||
		strings.Contains(strings.ToLower(j.Department), q) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
