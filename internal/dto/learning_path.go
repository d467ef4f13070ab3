package dto

import (
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
)

// LearningPathView is a learning path enriched with mentors and progress.
type LearningPathView struct {
	models.LearningPath
	Mentors         []models.Mentor `json:"mentors"`
	CompletedSkills int             `json:"completedSkills"`
	Highlighted     bool            `json:"highlighted"`
	Link            string          `json:"link"`
}

// LearningPathListResponse is the learning path page payload.
type LearningPathListResponse struct {
	Paths []LearningPathView        `json:"paths"`
	View  navigation.PathsViewState `json:"view"`
}
