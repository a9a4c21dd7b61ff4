package service

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
)

type LocationService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewLocationService(s *server.Server, repos *repository.Repositories) *LocationService {
	return &LocationService{server: s, repos: repos}
}

// CreateLocationInput carries the raw request values. DateVisited uses
// model.DateVisitedLayout; empty means not visited yet.
type CreateLocationInput struct {
	LocationName string
	DateVisited  string
	Rating       int
	Category     string
	AvgCost      int
	GoogleMapURL *string
	Website      *string
	CityID       int
	UserID       int
}

func (s *LocationService) List(ctx context.Context) ([]model.LocationView, error) {
	g, err := loadGraph(ctx, s.repos)
	if err != nil {
		return nil, readFailure(err)
	}
	if len(g.allLocations) == 0 {
		return nil, emptyCollection("locations")
	}

	views := make([]model.LocationView, 0, len(g.allLocations))
	for i := range g.allLocations {
		views = append(views, g.locationView(&g.allLocations[i]))
	}
	return views, nil
}

func (s *LocationService) GetByID(ctx context.Context, id int) (*model.LocationView, error) {
	location, err := s.repos.Locations.GetByID(ctx, id)
	if err != nil {
		return nil, readFailure(err)
	}

	view, err := s.view(ctx, location)
	if err != nil {
		return nil, readFailure(err)
	}
	return view, nil
}

func (s *LocationService) view(ctx context.Context, location *model.Location) (*model.LocationView, error) {
	g, err := loadLocationTree(ctx, s.repos, location)
	if err != nil {
		return nil, err
	}
	view := g.locationView(location)
	return &view, nil
}

// Create reports every field violation at once, including unknown
// user_id/city_id references and an unparsable date_visited.
func (s *LocationService) Create(ctx context.Context, in CreateLocationInput) (*model.LocationView, error) {
	var v model.ValidationErrors

	dateVisited, err := model.ParseDateVisited(in.DateVisited)
	v.Merge(err)

	location, err := model.NewLocation(model.LocationParams{
		LocationName: in.LocationName,
		DateVisited:  dateVisited,
		Rating:       in.Rating,
		Category:     in.Category,
		AvgCost:      in.AvgCost,
		GoogleMapURL: in.GoogleMapURL,
		Website:      in.Website,
		CityID:       in.CityID,
		UserID:       in.UserID,
	})
	v.Merge(err)

	userIDs, err := s.repos.Users.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	v.Merge(model.ReferenceExists("user_id", in.UserID, userIDs))

	cityIDs, err := s.repos.Cities.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	v.Merge(model.ReferenceExists("city_id", in.CityID, cityIDs))

	if err := v.Err(); err != nil {
		return nil, invalid(err)
	}

	created, err := s.repos.Locations.Create(ctx, location)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, created)
}

// Delete removes the location and its notes.
func (s *LocationService) Delete(ctx context.Context, id int) error {
	return s.repos.Locations.Delete(ctx, id)
}
