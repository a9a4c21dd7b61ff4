package service

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
)

// graph indexes loaded rows by id and by parent id so views can be
// assembled without further queries. Rows are appended in id order, which
// keeps every nested collection ordered by id.
type graph struct {
	users     map[int]model.User
	cities    map[int]model.City
	locations map[int]model.Location

	citiesByUser    map[int][]model.City
	locationsByCity map[int][]model.Location
	cityNotesByCity map[int][]model.CityNote
	notesByLocation map[int][]model.LocationNote

	// Full tables in id order, set by loadGraph only.
	allUsers         []model.User
	allCities        []model.City
	allLocations     []model.Location
	allCityNotes     []model.CityNote
	allLocationNotes []model.LocationNote
}

func newGraph() *graph {
	return &graph{
		users:           map[int]model.User{},
		cities:          map[int]model.City{},
		locations:       map[int]model.Location{},
		citiesByUser:    map[int][]model.City{},
		locationsByCity: map[int][]model.Location{},
		cityNotesByCity: map[int][]model.CityNote{},
		notesByLocation: map[int][]model.LocationNote{},
	}
}

func (g *graph) addUsers(users ...model.User) {
	for _, u := range users {
		g.users[u.ID] = u
	}
}

func (g *graph) addCities(cities ...model.City) {
	for _, c := range cities {
		g.cities[c.ID] = c
		g.citiesByUser[c.UserID] = append(g.citiesByUser[c.UserID], c)
	}
}

func (g *graph) addLocations(locations ...model.Location) {
	for _, l := range locations {
		g.locations[l.ID] = l
		g.locationsByCity[l.CityID] = append(g.locationsByCity[l.CityID], l)
	}
}

func (g *graph) addCityNotes(notes ...model.CityNote) {
	for _, n := range notes {
		g.cityNotesByCity[n.CityID] = append(g.cityNotesByCity[n.CityID], n)
	}
}

func (g *graph) addLocationNotes(notes ...model.LocationNote) {
	for _, n := range notes {
		g.notesByLocation[n.LocationID] = append(g.notesByLocation[n.LocationID], n)
	}
}

func (g *graph) locationsWithNotes(cityID int) []model.LocationWithNotes {
	locations := g.locationsByCity[cityID]
	out := make([]model.LocationWithNotes, 0, len(locations))
	for i := range locations {
		out = append(out, model.LocationWithNotes{
			LocationSummary: locations[i].Summary(),
			LocationNotes:   model.SummarizeLocationNotes(g.notesByLocation[locations[i].ID]),
		})
	}
	return out
}

func (g *graph) userView(u *model.User) model.UserView {
	cities := g.citiesByUser[u.ID]
	view := model.UserView{
		UserSummary: u.Summary(),
		Cities:      make([]model.CityWithChildren, 0, len(cities)),
	}
	for i := range cities {
		view.Cities = append(view.Cities, model.CityWithChildren{
			CitySummary: cities[i].Summary(),
			Locations:   g.locationsWithNotes(cities[i].ID),
			CityNotes:   model.SummarizeCityNotes(g.cityNotesByCity[cities[i].ID]),
		})
	}
	return view
}

func (g *graph) cityView(c *model.City) model.CityView {
	owner := g.users[c.UserID]
	return model.CityView{
		CitySummary: c.Summary(),
		User:        owner.Summary(),
		Locations:   g.locationsWithNotes(c.ID),
		CityNotes:   model.SummarizeCityNotes(g.cityNotesByCity[c.ID]),
	}
}

func (g *graph) locationView(l *model.Location) model.LocationView {
	city := g.cities[l.CityID]
	owner := g.users[l.UserID]
	return model.LocationView{
		LocationSummary: l.Summary(),
		City:            city.Summary(),
		User:            owner.Summary(),
		LocationNotes:   model.SummarizeLocationNotes(g.notesByLocation[l.ID]),
	}
}

func (g *graph) cityNoteView(n *model.CityNote) model.CityNoteView {
	city := g.cities[n.CityID]
	return model.CityNoteView{
		CityNoteSummary: n.Summary(),
		City:            city.Summary(),
	}
}

func (g *graph) locationNoteView(n *model.LocationNote) model.LocationNoteView {
	location := g.locations[n.LocationID]
	return model.LocationNoteView{
		LocationNoteSummary: n.Summary(),
		Location:            location.Summary(),
	}
}

// loadGraph reads every table; list operations render from it.
func loadGraph(ctx context.Context, repos *repository.Repositories) (*graph, error) {
	g := newGraph()

	users, err := repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	g.addUsers(users...)
	g.allUsers = users

	cities, err := repos.Cities.List(ctx)
	if err != nil {
		return nil, err
	}
	g.addCities(cities...)
	g.allCities = cities

	locations, err := repos.Locations.List(ctx)
	if err != nil {
		return nil, err
	}
	g.addLocations(locations...)
	g.allLocations = locations

	cityNotes, err := repos.CityNotes.List(ctx)
	if err != nil {
		return nil, err
	}
	g.addCityNotes(cityNotes...)
	g.allCityNotes = cityNotes

	locationNotes, err := repos.LocationNotes.List(ctx)
	if err != nil {
		return nil, err
	}
	g.addLocationNotes(locationNotes...)
	g.allLocationNotes = locationNotes

	return g, nil
}

// loadCityChildren adds the locations, their notes and the notes of each
// city in cities.
func (g *graph) loadCityChildren(ctx context.Context, repos *repository.Repositories, cities ...model.City) error {
	for _, c := range cities {
		locations, err := repos.Locations.ListByCity(ctx, c.ID)
		if err != nil {
			return err
		}
		g.addLocations(locations...)

		for _, l := range locations {
			if err := g.loadLocationNotes(ctx, repos, l.ID); err != nil {
				return err
			}
		}

		notes, err := repos.CityNotes.ListByCity(ctx, c.ID)
		if err != nil {
			return err
		}
		g.addCityNotes(notes...)
	}
	return nil
}

func (g *graph) loadLocationNotes(ctx context.Context, repos *repository.Repositories, locationID int) error {
	notes, err := repos.LocationNotes.ListByLocation(ctx, locationID)
	if err != nil {
		return err
	}
	g.addLocationNotes(notes...)
	return nil
}

// loadUserTree builds the graph behind a single UserView.
func loadUserTree(ctx context.Context, repos *repository.Repositories, u *model.User) (*graph, error) {
	g := newGraph()
	g.addUsers(*u)

	cities, err := repos.Cities.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	g.addCities(cities...)

	if err := g.loadCityChildren(ctx, repos, cities...); err != nil {
		return nil, err
	}
	return g, nil
}

// loadCityTree builds the graph behind a single CityView.
func loadCityTree(ctx context.Context, repos *repository.Repositories, c *model.City) (*graph, error) {
	g := newGraph()
	g.addCities(*c)

	owner, err := repos.Users.GetByID(ctx, c.UserID)
	if err != nil {
		return nil, err
	}
	g.addUsers(*owner)

	if err := g.loadCityChildren(ctx, repos, *c); err != nil {
		return nil, err
	}
	return g, nil
}

// loadLocationTree builds the graph behind a single LocationView.
func loadLocationTree(ctx context.Context, repos *repository.Repositories, l *model.Location) (*graph, error) {
	g := newGraph()
	g.addLocations(*l)

	city, err := repos.Cities.GetByID(ctx, l.CityID)
	if err != nil {
		return nil, err
	}
	g.addCities(*city)

	owner, err := repos.Users.GetByID(ctx, l.UserID)
	if err != nil {
		return nil, err
	}
	g.addUsers(*owner)

	if err := g.loadLocationNotes(ctx, repos, l.ID); err != nil {
		return nil, err
	}
	return g, nil
}
