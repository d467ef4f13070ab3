package models

import (
	"strconv"
	"strings"
)

// Availability describes whether a mentor is taking new mentees.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityLimited   Availability = "Limited"
)

// Mentor represents a mentor profile in the static catalog.
type Mentor struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Avatar          string       `json:"avatar"`
	Skills          []string     `json:"skills"`
	Bio             string       `json:"bio"`
	Availability    Availability `json:"availability"`
	Rating          float64      `json:"rating"`
	Students        int          `json:"students"`
	Experience      string       `json:"experience"`
	Location        string       `json:"location"`
	HourlyRate      string       `json:"hourly_rate"`
	Languages       []string     `json:"languages"`
	Specializations []string     `json:"specializations"`
}

// ExperienceYears parses the leading integer of the experience label ("10 years" -> 10).
// Labels without a leading number yield 0.
func (m Mentor) ExperienceYears() int {
	raw := strings.TrimSpace(m.Experience)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	years, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return years
}

// HasAnySkill reports whether the mentor carries at least one of the given skills.
func (m Mentor) HasAnySkill(skills []string) bool {
	for _, want := range skills {
		for _, have := range m.Skills {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (m Mentor) Clone() Mentor {
	out := m
	out.Skills = append([]string(nil), m.Skills...)
	out.Languages = append([]string(nil), m.Languages...)
	out.Specializations = append([]string(nil), m.Specializations...)
	return out
}

// SkillCategory groups related skills for dashboard browsing.
type SkillCategory struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	// MatchSkills decides mentor membership; Skills is the display list.
	MatchSkills []string `json:"match_skills"`
	Mentors     int      `json:"mentors"`
}

// Matchers returns the skills that place a mentor in the category.
func (c SkillCategory) Matchers() []string {
	if len(c.MatchSkills) > 0 {
		return c.MatchSkills
	}
	return c.Skills
}

// Clone returns a deep copy of the category.
func (c SkillCategory) Clone() SkillCategory {
	out := c
	out.Skills = append([]string(nil), c.Skills...)
	out.MatchSkills = append([]string(nil), c.MatchSkills...)
	return out
}
