package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"laptudirm.com/x/league/pkg/config"
	"laptudirm.com/x/league/pkg/leaderboard"
	"laptudirm.com/x/league/pkg/schedule"
)

// setupStore starts a disposable PostgreSQL container and returns a
// migrated Store connected to it.
func setupStore(t *testing.T) *Store {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("league"),
		postgres.WithUsername("league"),
		postgres.WithPassword("league"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Open(ctx, config.Database{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(ctx))
	// Migrating twice must be harmless.
	require.NoError(t, store.Migrate(ctx))

	return store
}

func TestStore(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	t.Run("CreateCompetition", func(t *testing.T) {
		competition, err := store.CreateCompetition(ctx, NewCompetition{
			Name:        "Spring Cup",
			Owner:       "owner-1",
			Points:      leaderboard.DefaultPoints,
			Competitors: []string{"A", "B", "C", "D"},
		})
		require.NoError(t, err)
		assert.NotZero(t, competition.ID)
		assert.Equal(t, schedule.FormatRoundRobin, competition.Format)

		rounds, err := store.Schedule(ctx, competition.ID)
		require.NoError(t, err)
		require.Len(t, rounds, 3)

		names := func(round RoundView) [][2]string {
			var out [][2]string
			for _, match := range round.Matches {
				assert.False(t, match.Played())
				out = append(out, [2]string{match.First.Name, match.Second.Name})
			}
			return out
		}

		assert.Equal(t, [][2]string{{"A", "D"}, {"B", "C"}}, names(rounds[0]))
		assert.Equal(t, [][2]string{{"A", "C"}, {"D", "B"}}, names(rounds[1]))
		assert.Equal(t, [][2]string{{"A", "B"}, {"C", "D"}}, names(rounds[2]))
		for i, round := range rounds {
			assert.Equal(t, i+1, round.Number)
		}
	})

	t.Run("PointsSystemAndUserAreShared", func(t *testing.T) {
		draft := NewCompetition{
			Name:        "League",
			Owner:       "owner-2",
			Points:      leaderboard.PointsSystem{Win: 2, Draw: 1, Loss: 0},
			Competitors: []string{"X", "Y"},
		}

		first, err := store.CreateCompetition(ctx, draft)
		require.NoError(t, err)
		second, err := store.CreateCompetition(ctx, draft)
		require.NoError(t, err)

		assert.Equal(t, first.PointsSystemID, second.PointsSystemID)
		assert.Equal(t, first.UserID, second.UserID)

		competitions, err := store.Competitions(ctx, "owner-2")
		require.NoError(t, err)
		require.Len(t, competitions, 2)
		assert.Equal(t, second.ID, competitions[0].ID)
		assert.Equal(t, 2, competitions[0].PointsSystem.Win)
	})

	t.Run("RejectedScheduleRollsBack", func(t *testing.T) {
		_, err := store.CreateCompetition(ctx, NewCompetition{
			Name:        "Odd",
			Owner:       "owner-3",
			Points:      leaderboard.DefaultPoints,
			Competitors: []string{"A", "B", "C"},
		})
		require.ErrorIs(t, err, schedule.ErrOddCompetitorCount)

		competitions, err := store.Competitions(ctx, "owner-3")
		require.NoError(t, err)
		assert.Empty(t, competitions)

		count, err := store.DB().NewSelect().Model((*User)(nil)).Where("token = ?", "owner-3").Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("InvalidCompetition", func(t *testing.T) {
		_, err := store.CreateCompetition(ctx, NewCompetition{Name: " ", Competitors: []string{"A", "B"}})
		assert.ErrorIs(t, err, ErrInvalidCompetition)

		_, err = store.CreateCompetition(ctx, NewCompetition{Name: "Cup", Competitors: []string{"A", "A"}})
		assert.ErrorIs(t, err, ErrInvalidCompetition)

		_, err = store.CreateCompetition(ctx, NewCompetition{Name: "Cup", Competitors: []string{"A"}})
		assert.ErrorIs(t, err, schedule.ErrInvalidInputSize)

		_, err = store.CreateCompetition(ctx, NewCompetition{Name: "Cup", Format: "swiss", Competitors: []string{"A", "B"}})
		assert.Error(t, err)
	})

	t.Run("ReportScoreAndLeaderboard", func(t *testing.T) {
		competition, err := store.CreateCompetition(ctx, NewCompetition{
			Name:        "Scored",
			Owner:       "owner-4",
			Points:      leaderboard.DefaultPoints,
			Competitors: []string{"A", "B", "C", "D"},
		})
		require.NoError(t, err)

		rounds, err := store.Schedule(ctx, competition.ID)
		require.NoError(t, err)

		// Round 1: A-D 2:0, B-C 1:1
		require.NoError(t, store.ReportScore(ctx, rounds[0].Matches[0].ID, 2, 0))
		require.NoError(t, store.ReportScore(ctx, rounds[0].Matches[1].ID, 1, 1))

		// Corrections replace the previous result.
		require.NoError(t, store.ReportScore(ctx, rounds[0].Matches[0].ID, 3, 0))

		rounds, err = store.Schedule(ctx, competition.ID)
		require.NoError(t, err)
		match := rounds[0].Matches[0]
		require.True(t, match.Played())
		assert.Equal(t, 3, *match.FirstScore)
		assert.Equal(t, 0, *match.SecondScore)

		standings, err := store.Leaderboard(ctx, competition.ID)
		require.NoError(t, err)
		require.Len(t, standings, 4)

		assert.Equal(t, "A", standings[0].Name)
		assert.Equal(t, 3, standings[0].Points)
		assert.Equal(t, "D", standings[3].Name)
		assert.Equal(t, 1, standings[3].Losses)

		assert.ErrorIs(t, store.ReportScore(ctx, match.ID, -1, 0), ErrInvalidScore)
		assert.ErrorIs(t, store.ReportScore(ctx, 1<<40, 1, 0), ErrNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Schedule(ctx, 1<<40)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.Leaderboard(ctx, 1<<40)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConnector(t *testing.T) {
	cfg := config.Database{
		User:     "league",
		Password: "secret",
		Host:     "db",
		Port:     5433,
		Name:     "competitions",
		Insecure: true,
	}

	driver := connector(cfg).Config()
	assert.Equal(t, "db:5433", driver.Addr)
	assert.Equal(t, "league", driver.User)
	assert.Equal(t, "secret", driver.Password)
	assert.Equal(t, "competitions", driver.Database)
	assert.Nil(t, driver.TLSConfig)

	driver = connector(config.Database{DSN: "postgres://u:p@example:6000/db?sslmode=disable"}).Config()
	assert.Equal(t, "example:6000", driver.Addr)
	assert.Equal(t, "db", driver.Database)
}
