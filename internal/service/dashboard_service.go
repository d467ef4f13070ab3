package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

const dashboardCacheKey = "dash:summary"

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL         time.Duration
	FeaturedMentors  int
	FeaturedCategory int
	FeaturedPaths    int
}

// DashboardService composes the landing page summary.
type DashboardService struct {
	repo   catalogRepository
	cache  *CacheService
	logger *zap.Logger
	cfg    DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Repo   catalogRepository
	Cache  *CacheService
	Logger *zap.Logger
	Config DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.FeaturedMentors <= 0 {
		cfg.FeaturedMentors = 3
	}
	if cfg.FeaturedCategory <= 0 {
		cfg.FeaturedCategory = 4
	}
	if cfg.FeaturedPaths <= 0 {
		cfg.FeaturedPaths = 3
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: params.Repo, cache: params.Cache, logger: logger, cfg: cfg}
}

// Summary returns the dashboard payload and whether it came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	var cached dto.DashboardResponse
	if s.cache.Get(ctx, dashboardCacheKey, &cached) {
		return &cached, true, nil
	}

	mentors, err := s.repo.List(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mentors")
	}
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}
	paths, err := s.repo.LearningPaths(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list learning paths")
	}

	summary := &dto.DashboardResponse{
		Stats:      dashboardStats(mentors, paths),
		Featured:   featuredMentors(mentors, s.cfg.FeaturedMentors),
		Categories: summarizeCategories(firstCategories(categories, s.cfg.FeaturedCategory), mentors),
		Paths:      dashboardPaths(paths, mentors, s.cfg.FeaturedPaths),
		Links: dto.DashboardLinks{
			FindMentor:   navigation.RouteMentors,
			ExplorePaths: navigation.RouteLearningPaths,
		},
	}
	s.cache.Set(ctx, dashboardCacheKey, summary, s.cfg.CacheTTL)
	return summary, false, nil
}

func dashboardStats(mentors []models.Mentor, paths []models.LearningPath) dto.DashboardStats {
	stats := dto.DashboardStats{TotalMentors: len(mentors), LearningPaths: len(paths)}
	var ratingSum float64
	for _, m := range mentors {
		stats.ActiveStudents += m.Students
		ratingSum += m.Rating
	}
	if len(mentors) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(mentors))*10) / 10
	}
	return stats
}

func featuredMentors(mentors []models.Mentor, limit int) []dto.FeaturedMentor {
	if limit > len(mentors) {
		limit = len(mentors)
	}
	out := make([]dto.FeaturedMentor, 0, limit)
	for _, m := range mentors[:limit] {
		out = append(out, dto.FeaturedMentor{
			ID:           m.ID,
			Name:         m.Name,
			Title:        m.Title,
			Company:      m.Company,
			Avatar:       m.Avatar,
			Rating:       m.Rating,
			Availability: m.Availability,
			Link:         navigation.MentorLink(m.ID),
		})
	}
	return out
}

func firstCategories(categories []models.SkillCategory, limit int) []models.SkillCategory {
	if limit > len(categories) {
		limit = len(categories)
	}
	return categories[:limit]
}

func dashboardPaths(paths []models.LearningPath, mentors []models.Mentor, limit int) []dto.DashboardLearningPath {
	if limit > len(paths) {
		limit = len(paths)
	}
	out := make([]dto.DashboardLearningPath, 0, limit)
	for _, p := range paths[:limit] {
		out = append(out, dto.DashboardLearningPath{
			ID:       p.ID,
			Title:    p.Title,
			Duration: p.Duration,
			Mentors:  len(pathMentors(p, mentors)),
			Link:     navigation.PathLink(p.ID),
		})
	}
	return out
}
