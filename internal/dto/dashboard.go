package dto

import "github.com/noah-isme/mentor-hub-api/internal/models"

// DashboardResponse captures the landing page payload.
type DashboardResponse struct {
	Stats      DashboardStats          `json:"stats"`
	Featured   []FeaturedMentor        `json:"featuredMentors"`
	Categories []CategorySummary       `json:"categories"`
	Paths      []DashboardLearningPath `json:"learningPaths"`
	Links      DashboardLinks          `json:"links"`
}

// DashboardStats summarises the catalog.
type DashboardStats struct {
	TotalMentors   int     `json:"totalMentors"`
	LearningPaths  int     `json:"learningPaths"`
	ActiveStudents int     `json:"activeStudents"`
	AverageRating  float64 `json:"averageRating"`
}

// FeaturedMentor is a mentor card on the dashboard.
type FeaturedMentor struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Title        string              `json:"title"`
	Company      string              `json:"company"`
	Avatar       string              `json:"avatar"`
	Rating       float64             `json:"rating"`
	Availability models.Availability `json:"availability"`
	Link         string              `json:"link"`
}

// DashboardLearningPath is a learning path teaser on the dashboard.
type DashboardLearningPath struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Mentors  int    `json:"mentors"`
	Link     string `json:"link"`
}

// DashboardLinks are the call-to-action destinations.
type DashboardLinks struct {
	FindMentor   string `json:"findMentor"`
	ExplorePaths string `json:"explorePaths"`
}
