package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
)

type CityService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewCityService(s *server.Server, repos *repository.Repositories) *CityService {
	return &CityService{server: s, repos: repos}
}

type CreateCityInput struct {
	CityName string
	Country  string
	UserID   int
}

func (s *CityService) List(ctx context.Context) ([]model.CityView, error) {
	g, err := loadGraph(ctx, s.repos)
	if err != nil {
		return nil, readFailure(err)
	}
	if len(g.allCities) == 0 {
		return nil, emptyCollection("cities")
	}

	views := make([]model.CityView, 0, len(g.allCities))
	for i := range g.allCities {
		views = append(views, g.cityView(&g.allCities[i]))
	}
	return views, nil
}

func (s *CityService) GetByID(ctx context.Context, id int) (*model.CityView, error) {
	city, err := s.repos.Cities.GetByID(ctx, id)
	if err != nil {
		return nil, readFailure(err)
	}

	view, err := s.view(ctx, city)
	if err != nil {
		return nil, readFailure(err)
	}
	return view, nil
}

func (s *CityService) view(ctx context.Context, city *model.City) (*model.CityView, error) {
	g, err := loadCityTree(ctx, s.repos, city)
	if err != nil {
		return nil, err
	}
	view := g.cityView(city)
	return &view, nil
}

// Create stores a city after checking its fields, that the owner exists
// and that the owner has not recorded the same city before.
func (s *CityService) Create(ctx context.Context, in CreateCityInput) (*model.CityView, error) {
	var v model.ValidationErrors

	city, err := model.NewCity(in.CityName, in.Country, in.UserID)
	v.Merge(err)

	userIDs, err := s.repos.Users.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	v.Merge(model.ReferenceExists("user_id", in.UserID, userIDs))

	if err := v.Err(); err != nil {
		return nil, invalid(err)
	}

	exists, err := s.repos.Cities.ExistsTriple(ctx, in.CityName, in.Country, in.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		v.Add("city_name", fmt.Sprintf("%s, %s already exists for this user.", in.CityName, in.Country))
		return nil, invalid(v)
	}

	created, err := s.repos.Cities.Create(ctx, city)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, created)
}

// Delete removes the city along with its locations and notes.
func (s *CityService) Delete(ctx context.Context, id int) error {
	return s.repos.Cities.Delete(ctx, id)
}
