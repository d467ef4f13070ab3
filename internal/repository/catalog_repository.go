package repository

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/models"
)

// ErrNotFound is returned when a catalog lookup has no match.
var ErrNotFound = errors.New("record not found")

// CatalogRepository serves the read-only mentor catalog from memory.
// The catalog is seeded once at construction and never mutated; every
// accessor hands out deep copies.
type CatalogRepository struct {
	mentors    []models.Mentor
	categories []models.SkillCategory
	paths      []models.LearningPath
	mentorIdx  map[int]int
	logger     *zap.Logger
}

// NewCatalogRepository constructs a repository seeded with the built-in catalog.
func NewCatalogRepository(logger *zap.Logger) *CatalogRepository {
	return NewCatalogRepositoryFrom(seedMentors(), seedCategories(), seedLearningPaths(), logger)
}

// NewCatalogRepositoryFrom constructs a repository over the given records.
// Records with a duplicate mentor id after the first are dropped.
func NewCatalogRepositoryFrom(mentors []models.Mentor, categories []models.SkillCategory, paths []models.LearningPath, logger *zap.Logger) *CatalogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo := &CatalogRepository{
		mentors:   make([]models.Mentor, 0, len(mentors)),
		mentorIdx: make(map[int]int, len(mentors)),
		logger:    logger,
	}
	for _, m := range mentors {
		if _, dup := repo.mentorIdx[m.ID]; dup {
			logger.Warn("duplicate mentor id dropped", zap.Int("mentor_id", m.ID))
			continue
		}
		repo.mentorIdx[m.ID] = len(repo.mentors)
		repo.mentors = append(repo.mentors, m.Clone())
	}
	for _, c := range categories {
		repo.categories = append(repo.categories, c.Clone())
	}
	for _, p := range paths {
		repo.paths = append(repo.paths, p.Clone())
	}
	return repo
}

// List returns every mentor in catalog order.
func (r *CatalogRepository) List(ctx context.Context) ([]models.Mentor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Mentor, len(r.mentors))
	for i, m := range r.mentors {
		out[i] = m.Clone()
	}
	return out, nil
}

// FindByID returns a mentor by identifier.
func (r *CatalogRepository) FindByID(ctx context.Context, id int) (*models.Mentor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := r.mentorIdx[id]
	if !ok {
		return nil, ErrNotFound
	}
	mentor := r.mentors[idx].Clone()
	return &mentor, nil
}

// Skills returns the unique skill tags across mentors, sorted.
func (r *CatalogRepository) Skills(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	skills := make([]string, 0)
	for _, m := range r.mentors {
		for _, s := range m.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)
	return skills, nil
}

// Categories returns every skill category in catalog order.
func (r *CatalogRepository) Categories(ctx context.Context) ([]models.SkillCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.SkillCategory, len(r.categories))
	for i, c := range r.categories {
		out[i] = c.Clone()
	}
	return out, nil
}

// FindCategory returns a skill category by identifier.
func (r *CatalogRepository) FindCategory(ctx context.Context, id int) (*models.SkillCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.categories {
		if c.ID == id {
			clone := c.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// LearningPaths returns every learning path in catalog order.
func (r *CatalogRepository) LearningPaths(ctx context.Context) ([]models.LearningPath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.LearningPath, len(r.paths))
	for i, p := range r.paths {
		out[i] = p.Clone()
	}
	return out, nil
}

// FindLearningPath returns a learning path by identifier.
func (r *CatalogRepository) FindLearningPath(ctx context.Context, id int) (*models.LearningPath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.paths {
		if p.ID == id {
			clone := p.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}
