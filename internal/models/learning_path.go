package models

// LearningPath is a curated sequence of skills backed by a set of mentors.
type LearningPath struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Skills      []string `json:"skills"`
	MatchSkills []string `json:"match_skills"`
	Progress    int      `json:"progress"`
}

// Matchers returns the skills that attach a mentor to the path.
func (p LearningPath) Matchers() []string {
	if len(p.MatchSkills) > 0 {
		return p.MatchSkills
	}
	return p.Skills
}

// Clone returns a deep copy of the path.
func (p LearningPath) Clone() LearningPath {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.MatchSkills = append([]string(nil), p.MatchSkills...)
	return out
}
