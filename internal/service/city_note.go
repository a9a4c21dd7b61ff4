package service

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
)

type CityNoteService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewCityNoteService(s *server.Server, repos *repository.Repositories) *CityNoteService {
	return &CityNoteService{server: s, repos: repos}
}

type CreateCityNoteInput struct {
	NoteBody string
	NoteType string
	CityID   int
}

func (s *CityNoteService) List(ctx context.Context) ([]model.CityNoteView, error) {
	g, err := loadGraph(ctx, s.repos)
	if err != nil {
		return nil, readFailure(err)
	}
	if len(g.allCityNotes) == 0 {
		return nil, emptyCollection("notes")
	}

	views := make([]model.CityNoteView, 0, len(g.allCityNotes))
	for i := range g.allCityNotes {
		views = append(views, g.cityNoteView(&g.allCityNotes[i]))
	}
	return views, nil
}

func (s *CityNoteService) GetByID(ctx context.Context, id int) (*model.CityNoteView, error) {
	note, err := s.repos.CityNotes.GetByID(ctx, id)
	if err != nil {
		return nil, readFailure(err)
	}

	view, err := s.view(ctx, note)
	if err != nil {
		return nil, readFailure(err)
	}
	return view, nil
}

func (s *CityNoteService) view(ctx context.Context, note *model.CityNote) (*model.CityNoteView, error) {
	city, err := s.repos.Cities.GetByID(ctx, note.CityID)
	if err != nil {
		return nil, err
	}

	g := newGraph()
	g.addCities(*city)
	view := g.cityNoteView(note)
	return &view, nil
}

func (s *CityNoteService) Create(ctx context.Context, in CreateCityNoteInput) (*model.CityNoteView, error) {
	var v model.ValidationErrors

	note, err := model.NewCityNote(in.NoteBody, in.NoteType, in.CityID)
	v.Merge(err)

	cityIDs, err := s.repos.Cities.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	v.Merge(model.ReferenceExists("city_id", in.CityID, cityIDs))

	if err := v.Err(); err != nil {
		return nil, invalid(err)
	}

	created, err := s.repos.CityNotes.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, created)
}

// Update replaces note_body and/or note_type.
func (s *CityNoteService) Update(ctx context.Context, id int, attrs map[string]any) (*model.CityNoteView, error) {
	note, err := s.repos.CityNotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := note.Apply(attrs); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.repos.CityNotes.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, updated)
}

func (s *CityNoteService) Delete(ctx context.Context, id int) error {
	return s.repos.CityNotes.Delete(ctx, id)
}
