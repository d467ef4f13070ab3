package models

// Availability filter values accepted by the mentor listing.
const (
	AvailabilityFilterAll       = "all"
	AvailabilityFilterAvailable = "available"
	AvailabilityFilterLimited   = "limited"
)

// Sort keys accepted by the mentor listing.
const (
	SortByRating     = "rating"
	SortByStudents   = "students"
	SortByExperience = "experience"
	SortByName       = "name"
)

// MentorCriteria captures the filter and sort options applied to the mentor catalog.
type MentorCriteria struct {
	Query          string   `json:"query"`
	SelectedSkills []string `json:"selected_skills"`
	Availability   string   `json:"availability"`
	SortBy         string   `json:"sort_by"`
}

// DefaultCriteria returns the criteria of a freshly opened listing.
func DefaultCriteria() MentorCriteria {
	return MentorCriteria{
		SelectedSkills: []string{},
		Availability:   AvailabilityFilterAll,
		SortBy:         SortByRating,
	}
}

// IsFiltered reports whether any narrowing filter is active.
func (c MentorCriteria) IsFiltered() bool {
	return c.Query != "" || len(c.SelectedSkills) > 0 || (c.Availability != "" && c.Availability != AvailabilityFilterAll)
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
