package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/deppfellow/travelog/internal/config"
	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/deppfellow/travelog/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*Services, *testutil.Memory) {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}

	mem := testutil.NewMemory()
	services, err := NewService(s, mem.Repositories())
	require.NoError(t, err)
	return services, mem
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	return httpErr.Status
}

func TestLoginOrRegister(t *testing.T) {
	services, mem := newTestServices(t)
	ctx := context.Background()

	view, created, err := services.Users.LoginOrRegister(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "a", view.Username)
	assert.Nil(t, view.TravelStyle)
	assert.Empty(t, view.Cities)

	again, created, err := services.Users.LoginOrRegister(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, view.ID, again.ID)
	assert.Equal(t, 1, mem.Count("users"))

	_, _, err = services.Users.LoginOrRegister(ctx, "not-an-email")
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	// Same local part, different domain: the derived username is taken.
	_, _, err = services.Users.LoginOrRegister(ctx, "a@other.org")
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))
}

func TestUserFindAndUpdate(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	u, err := services.Users.Create(ctx, "walker@example.com", "walker", nil)
	require.NoError(t, err)

	byID, err := services.Users.Find(ctx, "1")
	require.NoError(t, err)
	byName, err := services.Users.Find(ctx, "walker")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byID.ID)
	assert.Equal(t, u.ID, byName.ID)

	_, err = services.Users.Find(ctx, "nobody")
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))

	updated, err := services.Users.Update(ctx, u.ID, map[string]any{"travel_style": "Nature"})
	require.NoError(t, err)
	assert.Equal(t, "Nature", *updated.TravelStyle)

	_, err = services.Users.Update(ctx, u.ID, map[string]any{"travel_style": "Sleepy"})
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	_, err = services.Users.Update(ctx, u.ID, map[string]any{"nickname": "w"})
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	_, err = services.Users.Update(ctx, 99, map[string]any{"travel_style": "Nature"})
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestUpdateRejectsTakenUsername(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Users.Create(ctx, "a@b.com", "a", nil)
	require.NoError(t, err)
	b, err := services.Users.Create(ctx, "b@b.com", "b", nil)
	require.NoError(t, err)

	_, err = services.Users.Update(ctx, b.ID, map[string]any{"username": "a"})
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	// Re-submitting one's own username is not a collision.
	_, err = services.Users.Update(ctx, b.ID, map[string]any{"username": "b"})
	assert.NoError(t, err)
}

func TestListEmptyCollectionsAreNotFound(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Users.List(ctx)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	_, err = services.Cities.List(ctx)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	_, err = services.CityNotes.List(ctx)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	_, err = services.Locations.List(ctx)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	_, err = services.LocationNotes.List(ctx)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestListReadFailure(t *testing.T) {
	services, mem := newTestServices(t)
	mem.ReadErr = errors.New("connection reset by peer")

	_, err := services.Cities.List(context.Background())

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.ReadFailureMessage, httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "connection reset by peer", httpErr.Errors[0].Error)
}

func TestCityCreate(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	u, err := services.Users.Create(ctx, "a@b.com", "a", nil)
	require.NoError(t, err)

	city, err := services.Cities.Create(ctx, CreateCityInput{CityName: "Seoul", Country: "South Korea", UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, "a", city.User.Username)
	assert.Empty(t, city.Locations)
	assert.Empty(t, city.CityNotes)

	_, err = services.Cities.Create(ctx, CreateCityInput{CityName: "Seoul", Country: "South Korea", UserID: u.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	_, err = services.Cities.Create(ctx, CreateCityInput{CityName: "", Country: "", UserID: 42})
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Len(t, httpErr.Errors, 3)
	assert.Equal(t, "user_id does not exist.", httpErr.Errors[2].Error)
}

func TestLocationCreate(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	u, err := services.Users.Create(ctx, "a@b.com", "a", nil)
	require.NoError(t, err)
	city, err := services.Cities.Create(ctx, CreateCityInput{CityName: "Seoul", Country: "South Korea", UserID: u.ID})
	require.NoError(t, err)

	in := CreateLocationInput{
		LocationName: "Haneul Park",
		DateVisited:  "2019-05-04T13:45:00.000000Z",
		Rating:       4,
		Category:     "OutdoorActivity",
		CityID:       city.ID,
		UserID:       u.ID,
	}

	location, err := services.Locations.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "2019-05-04T13:45:00.000000Z", *location.DateVisited)
	assert.Equal(t, "Seoul", location.City.CityName)
	assert.Equal(t, "a", location.User.Username)

	noDate := in
	noDate.DateVisited = ""
	location, err = services.Locations.Create(ctx, noDate)
	require.NoError(t, err)
	assert.Nil(t, location.DateVisited)

	outOfRange := in
	outOfRange.Rating = 5
	_, err = services.Locations.Create(ctx, outOfRange)
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	orphan := in
	orphan.CityID = 99
	_, err = services.Locations.Create(ctx, orphan)
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))
}

func TestNotesAndViews(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	u, err := services.Users.Create(ctx, "a@b.com", "a", nil)
	require.NoError(t, err)
	city, err := services.Cities.Create(ctx, CreateCityInput{CityName: "Seoul", Country: "South Korea", UserID: u.ID})
	require.NoError(t, err)

	note, err := services.CityNotes.Create(ctx, CreateCityNoteInput{NoteBody: "so fast paced", CityID: city.ID})
	require.NoError(t, err)
	assert.Equal(t, model.NoteTypeOther, note.NoteType)
	assert.Equal(t, "Seoul", note.City.CityName)

	_, err = services.CityNotes.Create(ctx, CreateCityNoteInput{NoteBody: "x", CityID: 99})
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	note, err = services.CityNotes.Update(ctx, note.ID, map[string]any{"note_type": "Transportation"})
	require.NoError(t, err)
	assert.Equal(t, "Transportation", note.NoteType)

	location, err := services.Locations.Create(ctx, CreateLocationInput{
		LocationName: "Gimbap Cheonguk", Category: "FoodDrink", AvgCost: 1, CityID: city.ID, UserID: u.ID,
	})
	require.NoError(t, err)

	lnote, err := services.LocationNotes.Create(ctx, "Not so good: bibimbap", location.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gimbap Cheonguk", lnote.Location.LocationName)

	lnote, err = services.LocationNotes.Update(ctx, lnote.ID, map[string]any{"note_body": "bibimbap was fine"})
	require.NoError(t, err)
	assert.Equal(t, "bibimbap was fine", lnote.NoteBody)

	_, err = services.LocationNotes.Update(ctx, lnote.ID, map[string]any{"location_id": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

	userView, err := services.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, userView.Cities, 1)
	require.Len(t, userView.Cities[0].Locations, 1)
	assert.Len(t, userView.Cities[0].Locations[0].LocationNotes, 1)
	assert.Len(t, userView.Cities[0].CityNotes, 1)

	cityView, err := services.Cities.GetByID(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, cityView.User.ID)
	assert.Len(t, cityView.Locations, 1)
}

func TestDeleteCascades(t *testing.T) {
	services, mem := newTestServices(t)
	ctx := context.Background()

	u, err := services.Users.Create(ctx, "a@b.com", "a", nil)
	require.NoError(t, err)
	city, err := services.Cities.Create(ctx, CreateCityInput{CityName: "Seoul", Country: "South Korea", UserID: u.ID})
	require.NoError(t, err)
	_, err = services.CityNotes.Create(ctx, CreateCityNoteInput{NoteBody: "n", CityID: city.ID})
	require.NoError(t, err)
	location, err := services.Locations.Create(ctx, CreateLocationInput{
		LocationName: "l", Category: "Other", CityID: city.ID, UserID: u.ID,
	})
	require.NoError(t, err)
	_, err = services.LocationNotes.Create(ctx, "n", location.ID)
	require.NoError(t, err)

	require.NoError(t, services.Cities.Delete(ctx, city.ID))
	assert.Equal(t, 1, mem.Count("users"))
	assert.Zero(t, mem.Count("locations"))
	assert.Zero(t, mem.Count("locationNotes"))
	assert.Zero(t, mem.Count("cityNotes"))

	assert.Equal(t, http.StatusNotFound, httpStatus(t, services.Cities.Delete(ctx, city.ID)))
}

func TestSeed(t *testing.T) {
	services, mem := newTestServices(t)
	ctx := context.Background()

	plan := NewSeedPlan(gofakeit.New(42))
	require.Len(t, plan.Users, SeedUserCount)

	require.NoError(t, services.Seed.Apply(ctx, plan))
	assert.Equal(t, SeedUserCount, mem.Count("users"))
	assert.Equal(t, 3, mem.Count("cities"))
	assert.Equal(t, 4, mem.Count("cityNotes"))
	assert.Equal(t, 3, mem.Count("locations"))
	assert.Equal(t, 7, mem.Count("locationNotes"))

	// Seeding again starts from empty tables.
	require.NoError(t, services.Seed.Apply(ctx, NewSeedPlan(gofakeit.New(7))))
	assert.Equal(t, SeedUserCount, mem.Count("users"))
	assert.Equal(t, 3, mem.Count("cities"))

	seoul, err := services.Cities.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Seoul", seoul.CityName)
	assert.Len(t, seoul.Locations, 3)
	assert.Len(t, seoul.CityNotes, 3)
}
