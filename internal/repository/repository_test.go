package repository

import (
	"context"
	"os"
	"testing"

	"github.com/deppfellow/travelog/internal/database"
	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepositories connects to TEST_DATABASE_URL, migrates it and
// empties every table. The test is skipped without a database.
func setupTestRepositories(t *testing.T) (*Repositories, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	require.NoError(t, database.MigrateDSN(ctx, &logger, dsn, -1))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := &server.Server{
		Logger: &logger,
		DB:     &database.Database{Pool: pool},
	}
	repos := NewRepositories(s)
	require.NoError(t, repos.Journal.Truncate(ctx))

	return repos, pool
}

func count(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT count(*) FROM "`+table+`"`).Scan(&n))
	return n
}

func TestJournalCRUDAndCascade(t *testing.T) {
	repos, pool := setupTestRepositories(t)
	ctx := context.Background()

	user, err := repos.Users.Create(ctx, &model.User{Email: "a@b.com", Username: "a"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Nil(t, user.TravelStyle)

	found, err := repos.Users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	style := "Nature"
	user.TravelStyle = &style
	updated, err := repos.Users.Update(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "Nature", *updated.TravelStyle)
	assert.NotNil(t, updated.UpdatedAt)

	city, err := repos.Cities.Create(ctx, &model.City{CityName: "Seoul", Country: "South Korea", UserID: user.ID})
	require.NoError(t, err)

	exists, err := repos.Cities.ExistsTriple(ctx, "Seoul", "South Korea", user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repos.CityNotes.Create(ctx, &model.CityNote{NoteBody: "so fast paced", NoteType: model.NoteTypeOther, CityID: city.ID})
	require.NoError(t, err)

	location, err := repos.Locations.Create(ctx, &model.Location{
		LocationName: "Haneul Park",
		Rating:       4,
		Category:     "OutdoorActivity",
		CityID:       city.ID,
		UserID:       user.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, location.DateVisited)

	_, err = repos.LocationNotes.Create(ctx, &model.LocationNote{NoteBody: "great city views", LocationID: location.ID})
	require.NoError(t, err)

	notes, err := repos.LocationNotes.ListByLocation(ctx, location.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, repos.Users.Delete(ctx, user.ID))

	for _, table := range []string{"users", "cities", "cityNotes", "locations", "locationNotes"} {
		assert.Zero(t, count(t, pool, table), table)
	}
}

func TestMissingRowsAreNotFound(t *testing.T) {
	repos, _ := setupTestRepositories(t)
	ctx := context.Background()

	_, err := repos.Users.GetByID(ctx, 999)
	assert.True(t, errs.IsNotFound(err))

	_, err = repos.Cities.GetByID(ctx, 999)
	assert.True(t, errs.IsNotFound(err))

	assert.True(t, errs.IsNotFound(repos.Locations.Delete(ctx, 999)))

	_, err = repos.LocationNotes.Update(ctx, &model.LocationNote{Base: model.Base{ID: 999}, NoteBody: "x"})
	assert.True(t, errs.IsNotFound(err))
}

func TestDuplicateCityIsRejectedByConstraint(t *testing.T) {
	repos, _ := setupTestRepositories(t)
	ctx := context.Background()

	user, err := repos.Users.Create(ctx, &model.User{Email: "c@d.com", Username: "c"})
	require.NoError(t, err)

	_, err = repos.Cities.Create(ctx, &model.City{CityName: "Seoul", Country: "South Korea", UserID: user.ID})
	require.NoError(t, err)

	_, err = repos.Cities.Create(ctx, &model.City{CityName: "Seoul", Country: "South Korea", UserID: user.ID})
	assert.Error(t, err)
}
