package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/models"
)

// fakeCompetitionAPI stubs the two operations the leaderboards page uses.
type fakeCompetitionAPI struct {
	service.CompetitionService

	listFunc        func(ctx context.Context) ([]models.Competition, error)
	leaderboardFunc func(ctx context.Context, id uuid.UUID) ([]models.LeaderboardEntry, error)
}

func (f *fakeCompetitionAPI) List(ctx context.Context) ([]models.Competition, error) {
	return f.listFunc(ctx)
}

func (f *fakeCompetitionAPI) Leaderboard(ctx context.Context, id uuid.UUID) ([]models.LeaderboardEntry, error) {
	return f.leaderboardFunc(ctx, id)
}

func testCompetitions() []models.Competition {
	now := time.Now()
	return []models.Competition{
		{ID: uuid.New(), Name: "spring sprint", StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
		{ID: uuid.New(), Name: "summer sprint", StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour)},
	}
}

func TestLeaderboardsModel_LoadsStandingsForSelection(t *testing.T) {
	comps := testCompetitions()
	entries := []models.LeaderboardEntry{{FirstName: "Ada", LastName: "Lovelace", Score: 42}}

	fake := &fakeCompetitionAPI{
		listFunc: func(context.Context) ([]models.Competition, error) { return comps, nil },
		leaderboardFunc: func(_ context.Context, id uuid.UUID) ([]models.LeaderboardEntry, error) {
			require.Equal(t, comps[0].ID, id)
			return entries, nil
		},
	}
	m := NewLeaderboardsModel(context.Background(), fake, models.ThemeLight)

	loadCmd := m.Init()
	_, fetchCmd := m.Update(loadCmd())
	require.NotNil(t, fetchCmd)

	_, _ = m.Update(fetchCmd())

	assert.False(t, m.fetching)
	assert.Equal(t, entries, m.entries)
}

func TestLeaderboardsModel_StaleResponseIsDropped(t *testing.T) {
	comps := testCompetitions()

	fetchCtxs := make(map[uuid.UUID]context.Context)
	fake := &fakeCompetitionAPI{
		listFunc: func(context.Context) ([]models.Competition, error) { return comps, nil },
		leaderboardFunc: func(ctx context.Context, id uuid.UUID) ([]models.LeaderboardEntry, error) {
			fetchCtxs[id] = ctx
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []models.LeaderboardEntry{{FirstName: "For", LastName: string(id.String()[0]), Score: 1}}, nil
		},
	}
	m := NewLeaderboardsModel(context.Background(), fake, models.ThemeLight)

	loadCmd := m.Init()
	_, firstFetch := m.Update(loadCmd())
	require.NotNil(t, firstFetch)

	// Move the selection before the first standings response lands.
	_, secondFetch := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, secondFetch)

	// The superseded request was cancelled outright.
	secondMsg := secondFetch()
	firstMsg := firstFetch()
	require.Error(t, fetchCtxs[comps[0].ID].Err())

	// Delivering the stale response after the fresh one must not overwrite it.
	_, _ = m.Update(secondMsg)
	fresh := m.entries
	require.NotEmpty(t, fresh)

	_, _ = m.Update(firstMsg)
	assert.Equal(t, fresh, m.entries)
}

func TestLeaderboardsModel_ListErrorIsSurfaced(t *testing.T) {
	fake := &fakeCompetitionAPI{
		listFunc: func(context.Context) ([]models.Competition, error) {
			return nil, assert.AnError
		},
	}
	m := NewLeaderboardsModel(context.Background(), fake, models.ThemeLight)

	loadCmd := m.Init()
	_, cmd := m.Update(loadCmd())

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.NotEmpty(t, m.errMsg)
}
