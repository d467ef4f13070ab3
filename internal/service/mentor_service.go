package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	"github.com/noah-isme/mentor-hub-api/internal/repository"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
	"github.com/noah-isme/mentor-hub-api/pkg/export"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type catalogRepository interface {
	List(ctx context.Context) ([]models.Mentor, error)
	FindByID(ctx context.Context, id int) (*models.Mentor, error)
	Skills(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]models.SkillCategory, error)
	LearningPaths(ctx context.Context) ([]models.LearningPath, error)
}

// MentorListRequest carries listing criteria, navigation params and paging.
type MentorListRequest struct {
	Criteria models.MentorCriteria
	Params   navigation.Params
	Page     int
	PageSize int
}

type cachedListing struct {
	Mentors []models.Mentor `json:"mentors"`
	Matched int             `json:"matched"`
}

// MentorService serves the mentor listing, detail and export views.
type MentorService struct {
	repo     catalogRepository
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewMentorService constructs a MentorService.
func NewMentorService(repo catalogRepository, cache *CacheService, metrics *MetricsService, cacheTTL time.Duration, logger *zap.Logger) *MentorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MentorService{repo: repo, cache: cache, metrics: metrics, logger: logger, cacheTTL: cacheTTL}
}

// List applies navigation params to a fresh listing state, then filters,
// sorts and pages the catalog. The second return value reports a cache hit.
func (s *MentorService) List(ctx context.Context, req MentorListRequest) (*dto.MentorListResponse, *models.Pagination, bool, error) {
	mentors, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mentors")
	}
	view, err := s.reconcile(ctx, req, mentors)
	if err != nil {
		return nil, nil, false, err
	}

	page, size := normalizePaging(req.Page, req.PageSize)
	pagination := &models.Pagination{Page: page, PageSize: size}
	resp := &dto.MentorListResponse{View: view, Total: len(mentors), Search: req.Params.Search}

	key := criteriaCacheKey("mentors", view.Criteria, page, size)
	var cached cachedListing
	if s.cache.Get(ctx, key, &cached) {
		s.metrics.ObserveListing(cached.Matched)
		resp.Mentors = cached.Mentors
		resp.Matched = cached.Matched
		resp.Showing = len(cached.Mentors)
		pagination.TotalCount = cached.Matched
		return resp, pagination, true, nil
	}

	filtered := FilterMentors(mentors, view.Criteria)
	s.metrics.ObserveListing(len(filtered))

	resp.Mentors = paginate(filtered, page, size)
	resp.Matched = len(filtered)
	resp.Showing = len(resp.Mentors)
	pagination.TotalCount = len(filtered)

	s.cache.Set(ctx, key, cachedListing{Mentors: resp.Mentors, Matched: resp.Matched}, s.cacheTTL)
	return resp, pagination, false, nil
}

// Get returns a single mentor.
func (s *MentorService) Get(ctx context.Context, id int) (*dto.MentorDetailResponse, error) {
	mentor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "mentor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mentor")
	}
	return &dto.MentorDetailResponse{Mentor: *mentor, Link: navigation.MentorLink(mentor.ID)}, nil
}

// Skills returns every distinct skill tag, sorted.
func (s *MentorService) Skills(ctx context.Context) ([]string, error) {
	skills, err := s.repo.Skills(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list skills")
	}
	return skills, nil
}

// Categories returns skill categories with their mentor counts.
func (s *MentorService) Categories(ctx context.Context) ([]dto.CategorySummary, error) {
	mentors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mentors")
	}
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}
	return summarizeCategories(categories, mentors), nil
}

// Export renders the full filtered listing (no paging) in the given format.
func (s *MentorService) Export(ctx context.Context, req MentorListRequest, format string) (*dto.ExportFile, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnsupported.Code, appErrors.ErrUnsupported.Status, "export format must be csv or pdf")
	}
	mentors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mentors")
	}
	view, err := s.reconcile(ctx, req, mentors)
	if err != nil {
		return nil, err
	}

	filtered := FilterMentors(mentors, view.Criteria)
	content, err := renderer.Render(mentorDataset(filtered), "Mentors")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("mentor listing exported",
		zap.String("format", renderer.Extension()),
		zap.Int("rows", len(filtered)),
	)
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("mentors-%s.%s", view.Criteria.SortBy, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func (s *MentorService) reconcile(ctx context.Context, req MentorListRequest, mentors []models.Mentor) (navigation.MentorsViewState, error) {
	view := navigation.NewMentorsViewState()
	view.Criteria = NormalizeCriteria(req.Criteria)
	if req.Params.MentorID == nil && req.Params.CategoryID == nil {
		return view, nil
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return view, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}
	patch := navigation.ReconcileMentors(req.Params, mentors, categories)
	view = view.Apply(patch)
	view.Criteria = NormalizeCriteria(view.Criteria)
	return view, nil
}

func summarizeCategories(categories []models.SkillCategory, mentors []models.Mentor) []dto.CategorySummary {
	out := make([]dto.CategorySummary, 0, len(categories))
	for _, c := range categories {
		count := 0
		for _, m := range mentors {
			if m.HasAnySkill(c.Matchers()) {
				count++
			}
		}
		c.Mentors = count
		out = append(out, dto.CategorySummary{SkillCategory: c, Link: navigation.CategoryLink(c.ID)})
	}
	return out
}

func mentorDataset(mentors []models.Mentor) export.Dataset {
	headers := []string{"ID", "Name", "Title", "Company", "Skills", "Availability", "Rating", "Students", "Experience", "Rate"}
	rows := make([]map[string]string, 0, len(mentors))
	for _, m := range mentors {
		rows = append(rows, map[string]string{
			"ID":           strconv.Itoa(m.ID),
			"Name":         m.Name,
			"Title":        m.Title,
			"Company":      m.Company,
			"Skills":       strings.Join(m.Skills, "; "),
			"Availability": string(m.Availability),
			"Rating":       strconv.FormatFloat(m.Rating, 'f', 1, 64),
			"Students":     strconv.Itoa(m.Students),
			"Experience":   m.Experience,
			"Rate":         m.HourlyRate,
		})
	}
	return export.Dataset{
		Headers: headers,
		Rows:    rows,
		Widths:  []float64{0.5, 2, 2, 1.2, 4, 1.2, 0.8, 0.9, 1, 0.7},
	}
}

func normalizePaging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func paginate(mentors []models.Mentor, page, size int) []models.Mentor {
	// page is unbounded; compare in page units so the offset cannot overflow.
	if page-1 > len(mentors)/size {
		return []models.Mentor{}
	}
	start := (page - 1) * size
	if start >= len(mentors) {
		return []models.Mentor{}
	}
	end := start + size
	if end > len(mentors) {
		end = len(mentors)
	}
	return mentors[start:end]
}
