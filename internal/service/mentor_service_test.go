package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

type failingCatalog struct {
	err error
}

func (f failingCatalog) List(context.Context) ([]models.Mentor, error) { return nil, f.err }
func (f failingCatalog) FindByID(context.Context, int) (*models.Mentor, error) {
	return nil, f.err
}
func (f failingCatalog) Skills(context.Context) ([]string, error) { return nil, f.err }
func (f failingCatalog) Categories(context.Context) ([]models.SkillCategory, error) {
	return nil, f.err
}
func (f failingCatalog) LearningPaths(context.Context) ([]models.LearningPath, error) {
	return nil, f.err
}

func newMentorService(t *testing.T, cache *CacheService) *MentorService {
	t.Helper()
	return NewMentorService(newCatalog(t), cache, NewMetricsService(), 0, zap.NewNop())
}

func intPtr(v int) *int { return &v }

func TestMentorServiceListDefault(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, pagination, hit, err := svc.List(context.Background(), MentorListRequest{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 7, resp.Total)
	assert.Equal(t, 7, resp.Matched)
	assert.Equal(t, 7, resp.Showing)
	assert.Equal(t, models.SortByRating, resp.View.Criteria.SortBy)
	assert.Equal(t, &models.Pagination{Page: 1, PageSize: defaultPageSize, TotalCount: 7}, pagination)
}

func TestMentorServiceListQuery(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, _, _, err := svc.List(context.Background(), MentorListRequest{
		Criteria: models.MentorCriteria{Query: "data"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, mentorIDs(resp.Mentors))
	assert.Equal(t, 2, resp.Matched)
	assert.Equal(t, 7, resp.Total)
}

func TestMentorServiceListCategoryParam(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, _, _, err := svc.List(context.Background(), MentorListRequest{
		Criteria: models.MentorCriteria{SelectedSkills: []string{"Figma"}},
		Params:   navigation.Params{CategoryID: intPtr(3)},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Mentors)
	assert.Equal(t, []int{2}, mentorIDs(resp.Mentors))
	require.NotNil(t, resp.View.ActiveCategory)
	assert.Equal(t, "Data Science", resp.View.ActiveCategory.Name)
	assert.NotContains(t, resp.View.Criteria.SelectedSkills, "Figma")
}

func TestMentorServiceListMentorParam(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, _, _, err := svc.List(context.Background(), MentorListRequest{
		Params: navigation.Params{MentorID: intPtr(4), Search: "design"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.View.SelectedMentor)
	assert.Equal(t, "Emily Watson", resp.View.SelectedMentor.Name)
	assert.True(t, resp.View.ConnectionOpen)
	assert.Equal(t, "design", resp.Search)
	assert.Equal(t, 7, resp.Matched, "search hint does not filter")
}

func TestMentorServiceListUnknownParamsAreIgnored(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, _, _, err := svc.List(context.Background(), MentorListRequest{
		Params: navigation.Params{MentorID: intPtr(99), CategoryID: intPtr(42)},
	})
	require.NoError(t, err)
	assert.Nil(t, resp.View.SelectedMentor)
	assert.False(t, resp.View.ConnectionOpen)
	assert.Nil(t, resp.View.ActiveCategory)
	assert.Equal(t, 7, resp.Matched)
}

func TestMentorServiceListPaging(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, pagination, _, err := svc.List(context.Background(), MentorListRequest{Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{8, 3, 7}, mentorIDs(resp.Mentors))
	assert.Equal(t, 7, pagination.TotalCount)

	resp, _, _, err = svc.List(context.Background(), MentorListRequest{Page: 5, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, resp.Mentors)
	assert.Equal(t, 0, resp.Showing)
}

func TestMentorServiceListHugePage(t *testing.T) {
	svc := newMentorService(t, nil)

	var resp *dto.MentorListResponse
	require.NotPanics(t, func() {
		var err error
		resp, _, _, err = svc.List(context.Background(), MentorListRequest{Page: math.MaxInt, PageSize: 20})
		require.NoError(t, err)
	})
	assert.Empty(t, resp.Mentors)
	assert.Equal(t, 0, resp.Showing)
	assert.Equal(t, 7, resp.Matched)
}

func TestMentorServiceListObservesCachedListing(t *testing.T) {
	metrics := NewMetricsService()
	cache := NewCacheService(newMemoryCacheRepo(), nil, 0, zap.NewNop(), true)
	svc := NewMentorService(newCatalog(t), cache, metrics, 0, zap.NewNop())
	req := MentorListRequest{Criteria: models.MentorCriteria{Query: "data"}}

	_, _, hit, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	require.False(t, hit)
	_, _, hit, err = svc.List(context.Background(), req)
	require.NoError(t, err)
	require.True(t, hit)

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	var samples uint64
	var sum float64
	for _, family := range families {
		if family.GetName() != "mentor_listing_results" {
			continue
		}
		for _, metric := range family.GetMetric() {
			samples += metric.GetHistogram().GetSampleCount()
			sum += metric.GetHistogram().GetSampleSum()
		}
	}
	assert.Equal(t, uint64(2), samples)
	assert.Equal(t, float64(4), sum)
}

func TestMentorServiceListUsesCache(t *testing.T) {
	repo := newMemoryCacheRepo()
	cache := NewCacheService(repo, nil, 0, zap.NewNop(), true)
	svc := newMentorService(t, cache)
	req := MentorListRequest{Criteria: models.MentorCriteria{Query: "data"}}

	first, _, hit, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, repo.sets)

	second, _, hit, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, mentorIDs(first.Mentors), mentorIDs(second.Mentors))
	assert.Equal(t, first.Matched, second.Matched)
}

func TestMentorServiceListCacheErrorFallsBack(t *testing.T) {
	repo := newMemoryCacheRepo()
	repo.getErr = errors.New("redis down")
	cache := NewCacheService(repo, nil, 0, zap.NewNop(), true)
	svc := newMentorService(t, cache)

	resp, _, hit, err := svc.List(context.Background(), MentorListRequest{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 7, resp.Matched)
}

func TestMentorServiceListRepositoryError(t *testing.T) {
	svc := NewMentorService(failingCatalog{err: errors.New("boom")}, nil, nil, 0, nil)

	_, _, _, err := svc.List(context.Background(), MentorListRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestMentorServiceGet(t *testing.T) {
	svc := newMentorService(t, nil)

	detail, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Patel", detail.Mentor.Name)
	assert.Equal(t, "/mentors?mentor=2", detail.Link)

	_, err = svc.Get(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestMentorServiceCategories(t *testing.T) {
	svc := newMentorService(t, nil)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)

	counts := map[int]int{}
	for _, c := range categories {
		counts[c.ID] = c.Mentors
		assert.Equal(t, navigation.CategoryLink(c.ID), c.Link)
	}
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1, 4: 1, 5: 1, 6: 2}, counts)
}

func TestMentorServiceListCategoryUsesMatchSkills(t *testing.T) {
	svc := newMentorService(t, nil)

	resp, _, _, err := svc.List(context.Background(), MentorListRequest{
		Params: navigation.Params{CategoryID: intPtr(2)},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 6}, mentorIDs(resp.Mentors))
	assert.ElementsMatch(t, []string{"Node.js", "PostgreSQL", "AWS"}, resp.View.Criteria.SelectedSkills)
}

func TestMentorServiceExport(t *testing.T) {
	svc := newMentorService(t, nil)

	file, err := svc.Export(context.Background(), MentorListRequest{
		Criteria: models.MentorCriteria{Query: "data", SortBy: models.SortByName},
	}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "mentors-name.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Contains(t, string(file.Content), "Dr. Priya Patel")
	assert.Contains(t, string(file.Content), "Marcus Johnson")
	assert.NotContains(t, string(file.Content), "Emily Watson")

	pdf, err := svc.Export(context.Background(), MentorListRequest{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.NotEmpty(t, pdf.Content)

	_, err = svc.Export(context.Background(), MentorListRequest{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupported.Code, appErrors.FromError(err).Code)
}
