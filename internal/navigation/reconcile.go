package navigation

import "github.com/noah-isme/mentor-hub-api/internal/models"

// MentorsViewState is the page-level state of the mentor listing.
type MentorsViewState struct {
	Criteria       models.MentorCriteria `json:"criteria"`
	SelectedMentor *models.Mentor        `json:"selected_mentor,omitempty"`
	ConnectionOpen bool                  `json:"connection_open"`
	ActiveCategory *models.SkillCategory `json:"active_category,omitempty"`
}

// NewMentorsViewState returns the state of a freshly opened listing.
func NewMentorsViewState() MentorsViewState {
	return MentorsViewState{Criteria: models.DefaultCriteria()}
}

// MentorsPatch is the state change derived from navigation parameters.
// Zero fields leave the corresponding state untouched.
type MentorsPatch struct {
	SelectedMentor *models.Mentor        `json:"selected_mentor,omitempty"`
	Category       *models.SkillCategory `json:"category,omitempty"`
}

// Empty reports whether applying the patch changes nothing.
func (p MentorsPatch) Empty() bool {
	return p.SelectedMentor == nil && p.Category == nil
}

// ReconcileMentors maps navigation params onto a listing patch. Unknown
// mentor or category ids produce no change.
func ReconcileMentors(params Params, mentors []models.Mentor, categories []models.SkillCategory) MentorsPatch {
	var patch MentorsPatch
	if params.MentorID != nil {
		for _, m := range mentors {
			if m.ID == *params.MentorID {
				mentor := m.Clone()
				patch.SelectedMentor = &mentor
				break
			}
		}
	}
	if params.CategoryID != nil {
		for _, c := range categories {
			if c.ID == *params.CategoryID {
				category := c.Clone()
				patch.Category = &category
				break
			}
		}
	}
	return patch
}

// Apply returns the state with patch applied. A selected mentor opens the
// connection view; a category replaces the selected skills with the
// category's matching skill table.
func (s MentorsViewState) Apply(patch MentorsPatch) MentorsViewState {
	next := s
	if s.Criteria.SelectedSkills != nil {
		next.Criteria.SelectedSkills = append(make([]string, 0, len(s.Criteria.SelectedSkills)), s.Criteria.SelectedSkills...)
	}
	if patch.SelectedMentor != nil {
		mentor := patch.SelectedMentor.Clone()
		next.SelectedMentor = &mentor
		next.ConnectionOpen = true
	}
	if patch.Category != nil {
		category := patch.Category.Clone()
		next.ActiveCategory = &category
		next.Criteria.SelectedSkills = uniqueSkills(category.Matchers())
	}
	return next
}

// CloseConnection dismisses the connection view and clears the selection.
func (s MentorsViewState) CloseConnection() MentorsViewState {
	next := s
	next.SelectedMentor = nil
	next.ConnectionOpen = false
	return next
}

// PathsViewState is the page-level state of the learning path page.
type PathsViewState struct {
	HighlightedPathID *int `json:"highlighted_path_id,omitempty"`
}

// PathsPatch is the state change derived from navigation parameters.
type PathsPatch struct {
	HighlightedPathID *int `json:"highlighted_path_id,omitempty"`
}

// ReconcilePaths maps navigation params onto a learning path patch.
func ReconcilePaths(params Params, paths []models.LearningPath) PathsPatch {
	if params.PathID == nil {
		return PathsPatch{}
	}
	for _, p := range paths {
		if p.ID == *params.PathID {
			id := p.ID
			return PathsPatch{HighlightedPathID: &id}
		}
	}
	return PathsPatch{}
}

// Apply returns the state with patch applied.
func (s PathsViewState) Apply(patch PathsPatch) PathsViewState {
	if patch.HighlightedPathID == nil {
		return s
	}
	id := *patch.HighlightedPathID
	return PathsViewState{HighlightedPathID: &id}
}

func uniqueSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
