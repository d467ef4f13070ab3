package service

import (
	"sort"
	"strings"

	"github.com/noah-isme/mentor-hub-api/internal/models"
)

// NormalizeCriteria canonicalises listing criteria: the query is trimmed,
// blank and duplicate skills are dropped, and unknown availability or sort
// values fall back to "all" and "rating".
func NormalizeCriteria(c models.MentorCriteria) models.MentorCriteria {
	out := models.MentorCriteria{
		Query:          strings.TrimSpace(c.Query),
		SelectedSkills: make([]string, 0, len(c.SelectedSkills)),
		Availability:   models.AvailabilityFilterAll,
		SortBy:         models.SortByRating,
	}

	seen := make(map[string]struct{}, len(c.SelectedSkills))
	for _, skill := range c.SelectedSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out.SelectedSkills = append(out.SelectedSkills, skill)
	}

	switch availability := strings.ToLower(strings.TrimSpace(c.Availability)); availability {
	case models.AvailabilityFilterAvailable, models.AvailabilityFilterLimited:
		out.Availability = availability
	}

	switch sortBy := strings.ToLower(strings.TrimSpace(c.SortBy)); sortBy {
	case models.SortByStudents, models.SortByExperience, models.SortByName:
		out.SortBy = sortBy
	}

	return out
}

// ToggleSkill adds skill to the selection, or removes it when already selected.
func ToggleSkill(c models.MentorCriteria, skill string) models.MentorCriteria {
	out := c
	out.SelectedSkills = make([]string, 0, len(c.SelectedSkills)+1)
	removed := false
	for _, s := range c.SelectedSkills {
		if s == skill {
			removed = true
			continue
		}
		out.SelectedSkills = append(out.SelectedSkills, s)
	}
	if !removed {
		out.SelectedSkills = append(out.SelectedSkills, skill)
	}
	return out
}

// ClearCriteria resets every filter and the sort key.
func ClearCriteria() models.MentorCriteria {
	return models.DefaultCriteria()
}

// FilterMentors returns the mentors matching criteria, sorted by its key.
// The input slice is never modified; ties keep their input order.
func FilterMentors(mentors []models.Mentor, criteria models.MentorCriteria) []models.Mentor {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	availability := strings.ToLower(strings.TrimSpace(criteria.Availability))

	result := make([]models.Mentor, 0, len(mentors))
	for _, m := range mentors {
		if !matchesQuery(m, query) {
			continue
		}
		if len(criteria.SelectedSkills) > 0 && !m.HasAnySkill(criteria.SelectedSkills) {
			continue
		}
		if availability != "" && availability != models.AvailabilityFilterAll &&
			strings.ToLower(string(m.Availability)) != availability {
			continue
		}
		result = append(result, m)
	}

	SortMentors(result, criteria.SortBy)
	return result
}

// SortMentors stably sorts mentors in place. Unknown keys keep input order.
func SortMentors(mentors []models.Mentor, sortBy string) {
	var less func(a, b models.Mentor) bool
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case models.SortByRating:
		less = func(a, b models.Mentor) bool { return a.Rating > b.Rating }
	case models.SortByStudents:
		less = func(a, b models.Mentor) bool { return a.Students > b.Students }
	case models.SortByExperience:
		less = func(a, b models.Mentor) bool { return a.ExperienceYears() > b.ExperienceYears() }
	case models.SortByName:
		less = func(a, b models.Mentor) bool { return a.Name < b.Name }
	default:
		return
	}
	sort.SliceStable(mentors, func(i, j int) bool { return less(mentors[i], mentors[j]) })
}

func matchesQuery(m models.Mentor, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name), query) ||
		strings.Contains(strings.ToLower(m.Title), query) ||
		strings.Contains(strings.ToLower(m.Company), query) {
		return true
	}
	for _, skill := range m.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}
