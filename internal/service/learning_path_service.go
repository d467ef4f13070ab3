package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

// LearningPathService composes the learning path page.
type LearningPathService struct {
	repo   catalogRepository
	logger *zap.Logger
}

// NewLearningPathService constructs a LearningPathService.
func NewLearningPathService(repo catalogRepository, logger *zap.Logger) *LearningPathService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearningPathService{repo: repo, logger: logger}
}

// List returns every path with its mentors and progress, highlighting the
// path named by params when it exists.
func (s *LearningPathService) List(ctx context.Context, params navigation.Params) (*dto.LearningPathListResponse, error) {
	paths, err := s.repo.LearningPaths(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list learning paths")
	}
	mentors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mentors")
	}

	view := navigation.PathsViewState{}.Apply(navigation.ReconcilePaths(params, paths))

	out := make([]dto.LearningPathView, 0, len(paths))
	for _, p := range paths {
		out = append(out, dto.LearningPathView{
			LearningPath:    p,
			Mentors:         pathMentors(p, mentors),
			CompletedSkills: CompletedSkills(p),
			Highlighted:     view.HighlightedPathID != nil && *view.HighlightedPathID == p.ID,
			Link:            navigation.PathLink(p.ID),
		})
	}
	return &dto.LearningPathListResponse{Paths: out, View: view}, nil
}

// CompletedSkills is the number of skills covered by the path's progress,
// rounded down.
func CompletedSkills(p models.LearningPath) int {
	progress := p.Progress
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return progress * len(p.Skills) / 100
}

func pathMentors(p models.LearningPath, mentors []models.Mentor) []models.Mentor {
	out := make([]models.Mentor, 0)
	for _, m := range mentors {
		if m.HasAnySkill(p.Matchers()) {
			out = append(out, m)
		}
	}
	return out
}
