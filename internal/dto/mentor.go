package dto

import (
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
)

// MentorListResponse is the filtered mentor listing with its reconciled view state.
type MentorListResponse struct {
	Mentors []models.Mentor             `json:"mentors"`
	View    navigation.MentorsViewState `json:"view"`
	Showing int                         `json:"showing"`
	Matched int                         `json:"matched"`
	Total   int                         `json:"total"`
	Search  string                      `json:"searchHint,omitempty"`
}

// MentorDetailResponse wraps a mentor with its outbound deep link.
type MentorDetailResponse struct {
	Mentor models.Mentor `json:"mentor"`
	Link   string        `json:"link"`
}

// CategorySummary is a skill category with its mentor count and deep link.
type CategorySummary struct {
	models.SkillCategory
	Link string `json:"link"`
}

// ExportFile is a rendered listing export.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
