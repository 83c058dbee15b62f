package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func newStore(t *testing.T) *persistence.Store {
	t.Helper()
	ctx := context.Background()
	store, err := persistence.OpenSQLite(ctx, ":memory:", logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.CreateTables(ctx))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

type counts struct {
	profiles, categories, skills, experiences, projects int
	experienceTechnologies, achievements, projectTechnologies int
}

func total(m map[int64][]string) int {
	n := 0
	for _, v := range m {
		n += len(v)
	}
	return n
}

// expectedCounts is what one load of data writes.
func expectedCounts(data Data) counts {
	c := counts{profiles: 1, categories: len(data.Categories), experiences: len(data.Experiences), projects: len(data.Projects)}
	for _, cat := range data.Categories {
		c.skills += len(cat.Skills)
	}
	for _, e := range data.Experiences {
		c.experienceTechnologies += len(e.Technologies)
		c.achievements += len(e.Achievements)
	}
	for _, p := range data.Projects {
		c.projectTechnologies += len(p.Technologies)
	}
	return c
}

func countRows(t *testing.T, store *persistence.Store) counts {
	t.Helper()
	ctx := context.Background()
	var c counts
	err := store.WithTx(ctx, func(repos service.Repositories) error {
		var err error
		if c.profiles, err = repos.Profiles.Count(ctx); err != nil {
			return err
		}
		cats, err := repos.Skills.ListCategories(ctx)
		if err != nil {
			return err
		}
		c.categories = len(cats)
		names, err := repos.Skills.NamesByCategory(ctx)
		if err != nil {
			return err
		}
		c.skills = total(names)

		exps, err := repos.Experiences.ListByStartDateDesc(ctx)
		if err != nil {
			return err
		}
		c.experiences = len(exps)
		expIDs := make([]int64, len(exps))
		for i, e := range exps {
			expIDs[i] = e.ID
		}
		techs, err := repos.Experiences.TechnologiesByExperience(ctx, expIDs)
		if err != nil {
			return err
		}
		c.experienceTechnologies = total(techs)
		achievements, err := repos.Experiences.AchievementsByExperience(ctx, expIDs)
		if err != nil {
			return err
		}
		c.achievements = total(achievements)

		projects, err := repos.Projects.List(ctx, false)
		if err != nil {
			return err
		}
		c.projects = len(projects)
		projectIDs := make([]int64, len(projects))
		for i, p := range projects {
			projectIDs[i] = p.ID
		}
		projectTechs, err := repos.Projects.TechnologiesByProject(ctx, projectIDs)
		if err != nil {
			return err
		}
		c.projectTechnologies = total(projectTechs)
		return nil
	})
	require.NoError(t, err)
	return c
}

func TestSeedLoadsSampleDataOnce(t *testing.T) {
	store := newStore(t)
	uc := NewSeedUseCase(store, SampleData(), logger.NewNop())

	want := expectedCounts(SampleData())
	require.Equal(t, 5, want.categories)
	require.Equal(t, 5, want.experiences)
	require.Equal(t, 5, want.projects)
	require.Positive(t, want.skills)

	seeded, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, want, countRows(t, store))

	seeded, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, want, countRows(t, store))
}

func TestSeedIsAllOrNothing(t *testing.T) {
	store := newStore(t)
	data := SampleData()
	data.Categories = append(data.Categories, data.Categories[0])

	seeded, err := NewSeedUseCase(store, data, logger.NewNop()).Execute(context.Background())
	require.Error(t, err)
	assert.False(t, seeded)
	assert.Equal(t, counts{}, countRows(t, store))
}

func TestSeedFailsOnBadProjectAndRollsBack(t *testing.T) {
	store := newStore(t)
	data := SampleData()
	data.Projects[len(data.Projects)-1].Type = "mobile"

	_, err := NewSeedUseCase(store, data, logger.NewNop()).Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, counts{}, countRows(t, store))
}

func TestSampleDataShape(t *testing.T) {
	data := SampleData()
	require.Len(t, data.Categories, 5)
	require.Len(t, data.Experiences, 5)
	require.Len(t, data.Projects, 5)

	current := 0
	for _, e := range data.Experiences {
		assert.GreaterOrEqual(t, len(e.Technologies), 2, e.Company)
		assert.LessOrEqual(t, len(e.Technologies), 4, e.Company)
		assert.GreaterOrEqual(t, len(e.Achievements), 1, e.Company)
		assert.LessOrEqual(t, len(e.Achievements), 3, e.Company)
		if e.IsCurrent {
			current++
			assert.Nil(t, e.EndDate)
		}
	}
	assert.Equal(t, 1, current)

	for _, p := range data.Projects {
		assert.True(t, p.Type.Valid(), p.Title)
		assert.GreaterOrEqual(t, len(p.Technologies), 3, p.Title)
		assert.LessOrEqual(t, len(p.Technologies), 4, p.Title)
	}
}
