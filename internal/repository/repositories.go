package repository

import (
	"github.com/deppfellow/travelog/internal/server"
)

// Repositories groups every store so services receive one dependency.
//
// Fields are interfaces: the pgx implementations below serve production and
// tests swap in the in-memory store from internal/testutil.
type Repositories struct {
	Users         UserStore
	Cities        CityStore
	CityNotes     CityNoteStore
	Locations     LocationStore
	LocationNotes LocationNoteStore
	Journal       JournalStore
}

// NewRepositories builds the pgx-backed stores on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(s),
		Cities:        NewCityRepository(s),
		CityNotes:     NewCityNoteRepository(s),
		Locations:     NewLocationRepository(s),
		LocationNotes: NewLocationNoteRepository(s),
		Journal:       NewJournalRepository(s),
	}
}
