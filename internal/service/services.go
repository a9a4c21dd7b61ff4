package service

import (
	"github.com/deppfellow/travelog/internal/lib/job"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
)

type Services struct {
	Users         *UserService
	Cities        *CityService
	CityNotes     *CityNoteService
	Locations     *LocationService
	LocationNotes *LocationNoteService
	Seed          *SeedService
	Job           *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	services := &Services{
		Users:         NewUserService(s, repos),
		Cities:        NewCityService(s, repos),
		CityNotes:     NewCityNoteService(s, repos),
		Locations:     NewLocationService(s, repos),
		LocationNotes: NewLocationNoteService(s, repos),
		Job:           s.Job,
	}
	services.Seed = NewSeedService(s, repos, services)

	return services, nil
}
