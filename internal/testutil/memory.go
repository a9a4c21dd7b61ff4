// Package testutil provides an in-memory journal that satisfies every
// repository store, so services and handlers can be tested without
// PostgreSQL.
package testutil

import (
	"slices"
	"sync"
	"time"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
)

// Memory mirrors the schema: sequential ids per table, the city
// uniqueness constraint and the ON DELETE CASCADE foreign keys.
//
// Setting ReadErr makes every List call fail with it.
type Memory struct {
	mu sync.Mutex

	ReadErr error

	users         []model.User
	cities        []model.City
	cityNotes     []model.CityNote
	locations     []model.Location
	locationNotes []model.LocationNote

	seq map[string]int
}

func NewMemory() *Memory {
	return &Memory{seq: map[string]int{}}
}

// Repositories exposes m through the repository container.
func (m *Memory) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:         memoryUsers{m},
		Cities:        memoryCities{m},
		CityNotes:     memoryCityNotes{m},
		Locations:     memoryLocations{m},
		LocationNotes: memoryLocationNotes{m},
		Journal:       memoryJournal{m},
	}
}

// Count returns the number of rows held for table, named as in the schema.
func (m *Memory) Count(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch table {
	case "users":
		return len(m.users)
	case "cities":
		return len(m.cities)
	case "cityNotes":
		return len(m.cityNotes)
	case "locations":
		return len(m.locations)
	case "locationNotes":
		return len(m.locationNotes)
	}
	return 0
}

func (m *Memory) next(table string) (int, time.Time) {
	m.seq[table]++
	return m.seq[table], time.Now().UTC()
}

func ids[T any](items []T, id func(T) int) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// cascade helpers; callers hold m.mu.

func (m *Memory) dropLocation(id int) {
	m.locations = filter(m.locations, func(l model.Location) bool { return l.ID != id })
	m.locationNotes = filter(m.locationNotes, func(n model.LocationNote) bool { return n.LocationID != id })
}

func (m *Memory) dropCity(id int) {
	m.cities = filter(m.cities, func(c model.City) bool { return c.ID != id })
	m.cityNotes = filter(m.cityNotes, func(n model.CityNote) bool { return n.CityID != id })
	for _, l := range filter(m.locations, func(l model.Location) bool { return l.CityID == id }) {
		m.dropLocation(l.ID)
	}
}

func (m *Memory) dropUser(id int) {
	m.users = filter(m.users, func(u model.User) bool { return u.ID != id })
	for _, c := range filter(m.cities, func(c model.City) bool { return c.UserID == id }) {
		m.dropCity(c.ID)
	}
	for _, l := range filter(m.locations, func(l model.Location) bool { return l.UserID == id }) {
		m.dropLocation(l.ID)
	}
}
