package navigation

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-hub-api/internal/models"
)

var (
	testMentors = []models.Mentor{
		{ID: 1, Name: "Marcus Johnson", Skills: []string{"Product Strategy", "Data Analysis"}},
		{ID: 2, Name: "Dr. Priya Patel", Skills: []string{"Python", "SQL"}},
	}
	testCategories = []models.SkillCategory{
		{ID: 3, Name: "Data Science", Skills: []string{"Python", "Machine Learning", "SQL", "Python"}},
	}
	testPaths = []models.LearningPath{
		{ID: 1, Title: "Frontend Developer Path"},
		{ID: 3, Title: "Data Science Path"},
	}
)

func intPtr(v int) *int { return &v }

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{name: "empty", query: "", want: Params{}},
		{name: "all ids", query: "mentor=2&category=3&path=1&search=data", want: Params{MentorID: intPtr(2), CategoryID: intPtr(3), PathID: intPtr(1), Search: "data"}},
		{name: "non numeric ignored", query: "mentor=abc&category=3x&path=", want: Params{}},
		{name: "non positive ignored", query: "mentor=0&category=-3", want: Params{}},
		{name: "whitespace trimmed", query: "mentor=%202%20&search=%20go%20", want: Params{MentorID: intPtr(2), Search: "go"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			got := ParseParams(values)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReconcileMentorsOpensConnection(t *testing.T) {
	patch := ReconcileMentors(Params{MentorID: intPtr(2)}, testMentors, testCategories)
	require.NotNil(t, patch.SelectedMentor)

	state := NewMentorsViewState().Apply(patch)
	assert.True(t, state.ConnectionOpen)
	assert.Equal(t, "Dr. Priya Patel", state.SelectedMentor.Name)

	closed := state.CloseConnection()
	assert.False(t, closed.ConnectionOpen)
	assert.Nil(t, closed.SelectedMentor)
}

func TestReconcileMentorsUnknownIDsAreNoOps(t *testing.T) {
	patch := ReconcileMentors(Params{MentorID: intPtr(99), CategoryID: intPtr(42)}, testMentors, testCategories)
	assert.True(t, patch.Empty())

	initial := NewMentorsViewState()
	if diff := cmp.Diff(initial, initial.Apply(patch)); diff != "" {
		t.Fatalf("state changed (-want +got):\n%s", diff)
	}
}

func TestReconcileMentorsCategoryUsesSkillTable(t *testing.T) {
	patch := ReconcileMentors(Params{CategoryID: intPtr(3)}, testMentors, testCategories)
	require.NotNil(t, patch.Category)

	state := NewMentorsViewState().Apply(patch)
	assert.Equal(t, []string{"Python", "Machine Learning", "SQL"}, state.Criteria.SelectedSkills)
	require.NotNil(t, state.ActiveCategory)
	assert.Equal(t, "Data Science", state.ActiveCategory.Name)
}

func TestReconcileCategoryPrefersMatchSkills(t *testing.T) {
	categories := []models.SkillCategory{{
		ID:          2,
		Name:        "Backend Development",
		Skills:      []string{"Node.js", "Python", "Java", "PostgreSQL"},
		MatchSkills: []string{"Node.js", "PostgreSQL", "AWS", "AWS"},
	}}
	patch := ReconcileMentors(Params{CategoryID: intPtr(2)}, testMentors, categories)
	require.NotNil(t, patch.Category)

	state := NewMentorsViewState().Apply(patch)
	assert.Equal(t, []string{"Node.js", "PostgreSQL", "AWS"}, state.Criteria.SelectedSkills)
	assert.Equal(t, []string{"Node.js", "Python", "Java", "PostgreSQL"}, state.ActiveCategory.Skills)
}

func TestApplyIsIdempotent(t *testing.T) {
	patch := ReconcileMentors(Params{MentorID: intPtr(1), CategoryID: intPtr(3)}, testMentors, testCategories)
	once := NewMentorsViewState().Apply(patch)
	twice := once.Apply(patch)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("re-applying changed state (-once +twice):\n%s", diff)
	}

	pathPatch := ReconcilePaths(Params{PathID: intPtr(3)}, testPaths)
	p1 := PathsViewState{}.Apply(pathPatch)
	p2 := p1.Apply(pathPatch)
	if diff := cmp.Diff(p1, p2); diff != "" {
		t.Fatalf("re-applying path patch changed state:\n%s", diff)
	}
}

func TestApplyDoesNotAliasPatch(t *testing.T) {
	patch := ReconcileMentors(Params{CategoryID: intPtr(3)}, testMentors, testCategories)
	state := NewMentorsViewState().Apply(patch)
	patch.Category.Skills[0] = "mutated"
	assert.Equal(t, "Python", state.Criteria.SelectedSkills[0])
}

func TestReconcilePaths(t *testing.T) {
	patch := ReconcilePaths(Params{PathID: intPtr(3)}, testPaths)
	require.NotNil(t, patch.HighlightedPathID)
	assert.Equal(t, 3, *patch.HighlightedPathID)

	missing := ReconcilePaths(Params{PathID: intPtr(9)}, testPaths)
	assert.Nil(t, missing.HighlightedPathID)

	state := PathsViewState{HighlightedPathID: intPtr(1)}.Apply(missing)
	assert.Equal(t, 1, *state.HighlightedPathID)
}

func TestLinks(t *testing.T) {
	assert.Equal(t, "/mentors?mentor=2", MentorLink(2))
	assert.Equal(t, "/mentors?category=3", CategoryLink(3))
	assert.Equal(t, "/learning-paths?path=4", PathLink(4))
	assert.Equal(t, "/mentors?search=data+science", SearchLink("  data science "))
	assert.Equal(t, "/mentors", SearchLink("   "))
}

func TestWithCategoryPreservesOtherParams(t *testing.T) {
	got := WithCategory("/mentors?mentor=2&category=1", 3)
	route, params := Split(got)
	assert.Equal(t, RouteMentors, route)
	require.NotNil(t, params.MentorID)
	require.NotNil(t, params.CategoryID)
	assert.Equal(t, 2, *params.MentorID)
	assert.Equal(t, 3, *params.CategoryID)

	assert.Equal(t, got, WithCategory(got, 3))
}

func TestSplitRoundTripsLinks(t *testing.T) {
	route, params := Split(PathLink(2))
	assert.Equal(t, RouteLearningPaths, route)
	require.NotNil(t, params.PathID)
	assert.Equal(t, 2, *params.PathID)
	assert.Equal(t, "path=2", params.Values().Encode())

	route, params = Split("?mentor=x")
	assert.Equal(t, RouteDashboard, route)
	assert.True(t, params.Empty())
}
