package service

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
)

type LocationNoteService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewLocationNoteService(s *server.Server, repos *repository.Repositories) *LocationNoteService {
	return &LocationNoteService{server: s, repos: repos}
}

func (s *LocationNoteService) List(ctx context.Context) ([]model.LocationNoteView, error) {
	g, err := loadGraph(ctx, s.repos)
	if err != nil {
		return nil, readFailure(err)
	}
	if len(g.allLocationNotes) == 0 {
		return nil, emptyCollection("notes")
	}

	views := make([]model.LocationNoteView, 0, len(g.allLocationNotes))
	for i := range g.allLocationNotes {
		views = append(views, g.locationNoteView(&g.allLocationNotes[i]))
	}
	return views, nil
}

func (s *LocationNoteService) GetByID(ctx context.Context, id int) (*model.LocationNoteView, error) {
	note, err := s.repos.LocationNotes.GetByID(ctx, id)
	if err != nil {
		return nil, readFailure(err)
	}

	view, err := s.view(ctx, note)
	if err != nil {
		return nil, readFailure(err)
	}
	return view, nil
}

func (s *LocationNoteService) view(ctx context.Context, note *model.LocationNote) (*model.LocationNoteView, error) {
	location, err := s.repos.Locations.GetByID(ctx, note.LocationID)
	if err != nil {
		return nil, err
	}

	g := newGraph()
	g.addLocations(*location)
	view := g.locationNoteView(note)
	return &view, nil
}

func (s *LocationNoteService) Create(ctx context.Context, noteBody string, locationID int) (*model.LocationNoteView, error) {
	var v model.ValidationErrors

	note, err := model.NewLocationNote(noteBody, locationID)
	v.Merge(err)

	locationIDs, err := s.repos.Locations.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	v.Merge(model.ReferenceExists("location_id", locationID, locationIDs))

	if err := v.Err(); err != nil {
		return nil, invalid(err)
	}

	created, err := s.repos.LocationNotes.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, created)
}

// Update replaces note_body.
func (s *LocationNoteService) Update(ctx context.Context, id int, attrs map[string]any) (*model.LocationNoteView, error) {
	note, err := s.repos.LocationNotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := note.Apply(attrs); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.repos.LocationNotes.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, updated)
}

func (s *LocationNoteService) Delete(ctx context.Context, id int) error {
	return s.repos.LocationNotes.Delete(ctx, id)
}
