package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
)

func TestLearningPathServiceList(t *testing.T) {
	svc := NewLearningPathService(newCatalog(t), nil)

	resp, err := svc.List(context.Background(), navigation.Params{PathID: intPtr(3)})
	require.NoError(t, err)
	require.Len(t, resp.Paths, 4)

	progress := map[int]int{}
	for _, p := range resp.Paths {
		progress[p.ID] = p.Progress
		assert.Equal(t, p.ID == 3, p.Highlighted)
	}
	assert.Equal(t, map[int]int{1: 25, 2: 0, 3: 60, 4: 15}, progress)

	require.NotNil(t, resp.View.HighlightedPathID)
	assert.Equal(t, 3, *resp.View.HighlightedPathID)

	dataScience := resp.Paths[2]
	assert.Equal(t, 3, dataScience.CompletedSkills)
	assert.Equal(t, []int{2}, mentorIDs(dataScience.Mentors))
	assert.Equal(t, "/learning-paths?path=3", dataScience.Link)
}

func TestLearningPathServiceMentorsFollowMatchSkills(t *testing.T) {
	svc := NewLearningPathService(newCatalog(t), nil)

	resp, err := svc.List(context.Background(), navigation.Params{})
	require.NoError(t, err)

	mentors := map[int][]int{}
	for _, p := range resp.Paths {
		mentors[p.ID] = mentorIDs(p.Mentors)
	}
	assert.Equal(t, map[int][]int{1: {3}, 2: {3, 6}, 3: {2}, 4: {1}}, mentors)
}

func TestLearningPathServiceUnknownPath(t *testing.T) {
	svc := NewLearningPathService(newCatalog(t), nil)

	resp, err := svc.List(context.Background(), navigation.Params{PathID: intPtr(9)})
	require.NoError(t, err)
	assert.Nil(t, resp.View.HighlightedPathID)
	for _, p := range resp.Paths {
		assert.False(t, p.Highlighted)
	}
}

func TestCompletedSkills(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e"}
	tests := []struct {
		progress int
		want     int
	}{
		{progress: 0, want: 0},
		{progress: 25, want: 1},
		{progress: 60, want: 3},
		{progress: 100, want: 5},
		{progress: 150, want: 5},
		{progress: -10, want: 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CompletedSkills(models.LearningPath{Skills: skills, Progress: tc.progress}), tc.progress)
	}
}
