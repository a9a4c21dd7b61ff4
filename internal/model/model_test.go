package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violations(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var v ValidationErrors
	require.True(t, errors.As(err, &v), "expected ValidationErrors, got %v", err)
	return v
}

func ptr[T any](v T) *T { return &v }

func TestNewUserRejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"", "no-at-sign.com", "missing@dot", "plain"} {
		t.Run(email, func(t *testing.T) {
			u, err := NewUser(email, "someone", nil)
			assert.Nil(t, u)
			v := violations(t, err)
			assert.Equal(t, "email", v[0].Field)
		})
	}
}

func TestNewUserTravelStyle(t *testing.T) {
	for _, style := range TravelStyles {
		_, err := NewUser("a@b.com", "a", ptr(style))
		assert.NoError(t, err, style)
	}

	_, err := NewUser("a@b.com", "a", nil)
	assert.NoError(t, err)

	_, err = NewUser("a@b.com", "a", ptr("Couch Potato"))
	v := violations(t, err)
	assert.Equal(t, "Couch Potato not an allowed value for travel_style.", v[0].Error)
}

func TestNewUserCollectsAllViolations(t *testing.T) {
	_, err := NewUser("bad", "", ptr("Sleeper"))
	v := violations(t, err)
	require.Len(t, v, 3)
	assert.Equal(t, "Invalid email syntax. username must be provided. Sleeper not an allowed value for travel_style.", v.Error())
}

func TestUserApply(t *testing.T) {
	u, err := NewUser("a@b.com", "a", nil)
	require.NoError(t, err)

	require.NoError(t, u.Apply(map[string]any{"travel_style": "Nature", "username": "alpha"}))
	assert.Equal(t, "Nature", *u.TravelStyle)
	assert.Equal(t, "alpha", u.Username)

	err = u.Apply(map[string]any{"travel_style": "Sleepy"})
	violations(t, err)
	assert.Equal(t, "Nature", *u.TravelStyle, "failed apply must not mutate")

	err = u.Apply(map[string]any{"password": "hunter2"})
	v := violations(t, err)
	assert.Equal(t, "password", v[0].Field)

	err = u.Apply(map[string]any{"email": 42})
	violations(t, err)

	require.NoError(t, u.Apply(map[string]any{"travel_style": nil}))
	assert.Nil(t, u.TravelStyle)
}

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "a", UsernameFromEmail("a@b.com"))
	assert.Equal(t, "first.last", UsernameFromEmail("first.last@example.org"))
}

func TestNewCity(t *testing.T) {
	c, err := NewCity("Seoul", "South Korea", 1)
	require.NoError(t, err)
	assert.Equal(t, "Seoul", c.CityName)

	_, err = NewCity("", "", 1)
	v := violations(t, err)
	require.Len(t, v, 2)
	assert.Equal(t, "city_name must be provided.", v[0].Error)
	assert.Equal(t, "country must be provided.", v[1].Error)
}

func TestNewCityNote(t *testing.T) {
	n, err := NewCityNote("so fast paced", "", 2)
	require.NoError(t, err)
	assert.Equal(t, NoteTypeOther, n.NoteType)

	_, err = NewCityNote("subway", "Food", 2)
	v := violations(t, err)
	assert.Equal(t, "Food not an allowed value for note_type.", v[0].Error)

	require.NoError(t, n.Apply(map[string]any{"note_type": "Transportation"}))
	assert.Equal(t, "Transportation", n.NoteType)
	assert.Error(t, n.Apply(map[string]any{"city_id": 3}))
	assert.Error(t, n.Apply(map[string]any{"note_body": ""}))
}

func TestNewLocationBounds(t *testing.T) {
	base := LocationParams{LocationName: "Haneul Park", Category: "OutdoorActivity", CityID: 2, UserID: 1}

	for rating := 0; rating <= 4; rating++ {
		p := base
		p.Rating = rating
		_, err := NewLocation(p)
		assert.NoError(t, err, "rating %d", rating)
	}
	for avgCost := 0; avgCost <= 3; avgCost++ {
		p := base
		p.AvgCost = avgCost
		_, err := NewLocation(p)
		assert.NoError(t, err, "avg_cost %d", avgCost)
	}

	p := base
	p.Rating = 5
	_, err := NewLocation(p)
	assert.Equal(t, "5 not an allowed value for rating.", violations(t, err)[0].Error)

	p = base
	p.AvgCost = 4
	_, err = NewLocation(p)
	assert.Equal(t, "4 not an allowed value for avg_cost.", violations(t, err)[0].Error)

	p = base
	p.Rating = -1
	_, err = NewLocation(p)
	assert.Error(t, err)

	p = base
	p.Category = "Museum"
	_, err = NewLocation(p)
	assert.Equal(t, "Museum not an allowed value for category.", violations(t, err)[0].Error)
}

func TestParseDateVisited(t *testing.T) {
	got, err := ParseDateVisited("2019-05-04T13:45:00.123456Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 5, 4, 13, 45, 0, 123456000, time.UTC), *got)
	assert.Equal(t, "2019-05-04T13:45:00.123456Z", *FormatDateVisited(got))

	got, err = ParseDateVisited("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDateVisited("04/05/2019")
	assert.Equal(t, "date_visited", violations(t, err)[0].Field)
}

func TestReferenceExists(t *testing.T) {
	assert.NoError(t, ReferenceExists("user_id", 2, []int{1, 2, 3}))

	err := ReferenceExists("user_id", 9, []int{1, 2, 3})
	assert.Equal(t, "user_id does not exist.", violations(t, err)[0].Error)

	assert.Error(t, ReferenceExists("city_id", 1, nil))
}

func TestValidationErrorsHTTPError(t *testing.T) {
	var v ValidationErrors
	assert.Nil(t, v.Err())

	v.Add("rating", "5 not an allowed value for rating.")
	httpErr := v.HTTPError()
	assert.Equal(t, 422, httpErr.Status)
	assert.Equal(t, "5 not an allowed value for rating.", httpErr.Message)
	assert.Len(t, httpErr.Errors, 1)
}

func TestViewsDoNotLoopBack(t *testing.T) {
	city := City{Base: Base{ID: 1}, CityName: "Seoul", Country: "South Korea", UserID: 7}
	view := CityView{
		CitySummary: city.Summary(),
		User:        UserSummary{ID: 7, Email: "a@b.com", Username: "a"},
		Locations:   []LocationWithNotes{},
		CityNotes:   SummarizeCityNotes(nil),
	}

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	user := decoded["user"].(map[string]any)
	assert.NotContains(t, user, "cities")
	assert.Equal(t, []any{}, decoded["city_notes"])
	assert.NotContains(t, decoded, "created_at")
	assert.Equal(t, "Seoul", decoded["city_name"])
}
