package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-hub-api/internal/models"
)

func TestCatalogRepositorySeed(t *testing.T) {
	repo := NewCatalogRepository(nil)
	ctx := context.Background()

	mentors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, mentors, 7)

	ids := make([]int, 0, len(mentors))
	seen := map[int]bool{}
	for _, m := range mentors {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8}, ids)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	paths, err := repo.LearningPaths(ctx)
	require.NoError(t, err)
	assert.Len(t, paths, 4)
}

func TestCatalogRepositoryFindByID(t *testing.T) {
	repo := NewCatalogRepository(nil)
	ctx := context.Background()

	mentor, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Patel", mentor.Name)

	_, err = repo.FindByID(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindCategory(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindLearningPath(ctx, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepositoryReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository(nil)
	ctx := context.Background()

	mentors, err := repo.List(ctx)
	require.NoError(t, err)
	mentors[0].Name = "mutated"
	mentors[0].Skills[0] = "mutated"

	again, err := repo.FindByID(ctx, mentors[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Marcus Johnson", again.Name)
	assert.Equal(t, "Product Strategy", again.Skills[0])
}

func TestCatalogRepositoryDropsDuplicateIDs(t *testing.T) {
	repo := NewCatalogRepositoryFrom([]models.Mentor{
		{ID: 1, Name: "first"},
		{ID: 1, Name: "second"},
	}, nil, nil, nil)

	mentors, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "first", mentors[0].Name)
}

func TestCatalogRepositorySkillsSortedUnique(t *testing.T) {
	repo := NewCatalogRepository(nil)
	skills, err := repo.Skills(context.Background())
	require.NoError(t, err)

	assert.IsNonDecreasing(t, skills)
	assert.Contains(t, skills, "AWS")
	count := 0
	for _, s := range skills {
		if s == "AWS" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
