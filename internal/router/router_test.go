package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/travelog/internal/config"
	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/handler"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/deppfellow/travelog/internal/service"
	"github.com/deppfellow/travelog/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t   *testing.T
	e   *echo.Echo
	mem *testutil.Memory
}

func newTestAPI(t *testing.T, rateLimit float64) *testAPI {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "8080",
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
		},
		Logger: &logger,
	}

	mem := testutil.NewMemory()
	services, err := service.NewService(s, mem.Repositories())
	require.NoError(t, err)

	return &testAPI{t: t, e: NewRouter(s, handler.NewHandlers(s, services)), mem: mem}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// seedJournal registers one user with a city, a city note, a location and
// a location note, all with id 1.
func (a *testAPI) seedJournal() {
	a.t.Helper()

	steps := []struct{ path, body string }{
		{"/login", `{"email":"walker@example.com"}`},
		{"/cities", `{"city_name":"Seoul","country":"South Korea","user_id":1}`},
		{"/citynotes", `{"note_body":"so fast paced","city_id":1}`},
		{"/locations", `{"location_name":"Haneul Park","date_visited":"2019-05-04T13:45:00.000000Z","rating":4,"category":"OutdoorActivity","avg_cost":0,"city_id":1,"user_id":1}`},
		{"/locationnotes", `{"note_body":"great city views, especially at night","location_id":1}`},
	}
	for _, step := range steps {
		rec := a.do(http.MethodPost, step.path, step.body)
		require.Equal(a.t, http.StatusCreated, rec.Code, "%s: %s", step.path, rec.Body.String())
	}
}

func TestHome(t *testing.T) {
	api := newTestAPI(t, 0)

	rec := api.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, map[string]string{"message": "Hello World!"}, decode[map[string]string](t, rec))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStatusWithoutDependencies(t *testing.T) {
	api := newTestAPI(t, 0)

	rec := api.do(http.MethodGet, "/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, rec)["status"])
}

func TestEmptyCollectionsAreNotFound(t *testing.T) {
	api := newTestAPI(t, 0)

	for path, message := range map[string]string{
		"/users":         "no users exist",
		"/cities":        "no cities exist",
		"/citynotes":     "no notes exist",
		"/locations":     "no locations exist",
		"/locationnotes": "no notes exist",
	} {
		rec := api.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, message, decode[errs.HTTPError](t, rec).Message, path)
	}
}

func TestListsReturnJSONArrays(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	for _, path := range []string{"/users", "/cities", "/citynotes", "/locations", "/locationnotes"} {
		rec := api.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON, path)
		assert.Len(t, decode[[]map[string]any](t, rec), 1, path)
	}
}

func TestListReadFailure(t *testing.T) {
	api := newTestAPI(t, 0)
	api.mem.ReadErr = assert.AnError

	rec := api.do(http.MethodGet, "/locations", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, errs.ReadFailureMessage, body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, assert.AnError.Error(), body.Errors[0].Error)
}

func TestLoginOrRegister(t *testing.T) {
	api := newTestAPI(t, 0)

	rec := api.do(http.MethodPost, "/login", `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.UserView](t, rec)
	assert.Equal(t, "a", created.Username)
	assert.Nil(t, created.TravelStyle)
	assert.Empty(t, created.Cities)

	rec = api.do(http.MethodPost, "/login", `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[model.UserView](t, rec).ID)

	rec = api.do(http.MethodPost, "/login", `{"email":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid email syntax.", decode[errs.HTTPError](t, rec).Errors[0].Error)

	rec = api.do(http.MethodPost, "/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserByIdentifier(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	byID := decode[model.UserView](t, api.do(http.MethodGet, "/users/1", ""))
	byName := decode[model.UserView](t, api.do(http.MethodGet, "/users/walker", ""))
	assert.Equal(t, byID, byName)

	require.Len(t, byID.Cities, 1)
	require.Len(t, byID.Cities[0].Locations, 1)
	assert.Len(t, byID.Cities[0].Locations[0].LocationNotes, 1)
	assert.Len(t, byID.Cities[0].CityNotes, 1)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/users/ghost", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/users/99", "").Code)
}

func TestUserViewHasNoBackReferences(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	rec := api.do(http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	city := raw["cities"].([]any)[0].(map[string]any)
	assert.NotContains(t, city, "user")

	location := city["locations"].([]any)[0].(map[string]any)
	assert.NotContains(t, location, "city")
	assert.NotContains(t, location, "user")
	assert.Equal(t, "2019-05-04T13:45:00.000000Z", location["date_visited"])
	assert.NotContains(t, location, "created_at")
}

func TestPatchUser(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	rec := api.do(http.MethodPatch, "/users/1", `{"travel_style":"Foodie"}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, "Foodie", *decode[model.UserView](t, rec).TravelStyle)

	rec = api.do(http.MethodPatch, "/users/1", `{"travel_style":null}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Nil(t, decode[model.UserView](t, rec).TravelStyle)

	rec = api.do(http.MethodPatch, "/users/1", `{"travel_style":"Couch"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Couch not an allowed value for travel_style.", decode[errs.HTTPError](t, rec).Errors[0].Error)

	assert.Equal(t, http.StatusUnprocessableEntity, api.do(http.MethodPatch, "/users/1", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPatch, "/users/9", `{"username":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPatch, "/users/walker", `{"username":"x"}`).Code)
}

func TestCreateCity(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	rec := api.do(http.MethodPost, "/cities", `{"city_name":"Busan","country":"South Korea","user_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	city := decode[model.CityView](t, rec)
	assert.Equal(t, "walker", city.User.Username)
	assert.Empty(t, city.Locations)

	rec = api.do(http.MethodPost, "/cities", `{"city_name":"Seoul","country":"South Korea","user_id":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = api.do(http.MethodPost, "/cities", `{"city_name":"Lima","country":"Peru","user_id":42}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []errs.FieldError{{Field: "user_id", Error: "user_id does not exist."}}, decode[errs.HTTPError](t, rec).Errors)
}

func TestCreateLocationRules(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"rating above range", `{"location_name":"x","rating":5,"category":"Mart","avg_cost":0,"city_id":1,"user_id":1}`, http.StatusUnprocessableEntity},
		{"avg cost above range", `{"location_name":"x","rating":0,"category":"Mart","avg_cost":4,"city_id":1,"user_id":1}`, http.StatusUnprocessableEntity},
		{"unknown category", `{"location_name":"x","rating":0,"category":"Spa","avg_cost":0,"city_id":1,"user_id":1}`, http.StatusUnprocessableEntity},
		{"unknown city", `{"location_name":"x","rating":0,"category":"Mart","avg_cost":0,"city_id":7,"user_id":1}`, http.StatusUnprocessableEntity},
		{"bad date", `{"location_name":"x","date_visited":"May 4th","rating":0,"category":"Mart","avg_cost":0,"city_id":1,"user_id":1}`, http.StatusUnprocessableEntity},
		{"wrong type", `{"location_name":"x","rating":"four","category":"Mart","avg_cost":0,"city_id":1,"user_id":1}`, http.StatusBadRequest},
		{"not visited yet", `{"location_name":"x","rating":0,"category":"Mart","avg_cost":3,"city_id":1,"user_id":1}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/locations", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestNotesLifecycle(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	rec := api.do(http.MethodGet, "/citynotes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	note := decode[model.CityNoteView](t, rec)
	assert.Equal(t, model.NoteTypeOther, note.NoteType)
	assert.Equal(t, "Seoul", note.City.CityName)

	rec = api.do(http.MethodPatch, "/citynotes/1", `{"note_type":"Safety"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "Safety", decode[model.CityNoteView](t, rec).NoteType)

	rec = api.do(http.MethodPatch, "/citynotes/1", `{"note_type":"Gossip"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = api.do(http.MethodPatch, "/locationnotes/1", `{"note_body":"windy"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	lnote := decode[model.LocationNoteView](t, rec)
	assert.Equal(t, "windy", lnote.NoteBody)
	assert.Equal(t, "Haneul Park", lnote.Location.LocationName)

	rec = api.do(http.MethodPost, "/locationnotes", `{"note_body":"x","location_id":12}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/locationnotes/1", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/locationnotes/1", "").Code)
}

func TestDeleteUserCascades(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	rec := api.do(http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	for _, table := range []string{"users", "cities", "cityNotes", "locations", "locationNotes"} {
		assert.Zero(t, api.mem.Count(table), table)
	}

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/users/1", "").Code)
}

func TestDeleteLocationKeepsCity(t *testing.T) {
	api := newTestAPI(t, 0)
	api.seedJournal()

	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/locations/1", "").Code)

	assert.Equal(t, 1, api.mem.Count("cities"))
	assert.Equal(t, 1, api.mem.Count("cityNotes"))
	assert.Zero(t, api.mem.Count("locationNotes"))
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t, 0)

	rec := api.do(http.MethodGet, "/trips", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}

func TestRateLimit(t *testing.T) {
	api := newTestAPI(t, 1)

	assert.Equal(t, http.StatusAccepted, api.do(http.MethodGet, "/", "").Code)

	rec := api.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode[errs.HTTPError](t, rec).Code)
}
