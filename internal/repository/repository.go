// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every entity has a store interface the services depend on and a pgx
// implementation backed by the shared pool. Missing rows come back as
// 404 *errs.HTTPError values carrying a <ENTITY>_NOT_FOUND code; every other
// failure is returned wrapped so the global error handler can map driver
// errors through sqlerr.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
)

type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	ListIDs(ctx context.Context) ([]int, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int) error
}

type CityStore interface {
	List(ctx context.Context) ([]model.City, error)
	ListIDs(ctx context.Context) ([]int, error)
	ListByUser(ctx context.Context, userID int) ([]model.City, error)
	GetByID(ctx context.Context, id int) (*model.City, error)
	// ExistsTriple reports whether the user already recorded this city.
	ExistsTriple(ctx context.Context, cityName, country string, userID int) (bool, error)
	Create(ctx context.Context, city *model.City) (*model.City, error)
	Delete(ctx context.Context, id int) error
}

type CityNoteStore interface {
	List(ctx context.Context) ([]model.CityNote, error)
	ListByCity(ctx context.Context, cityID int) ([]model.CityNote, error)
	GetByID(ctx context.Context, id int) (*model.CityNote, error)
	Create(ctx context.Context, note *model.CityNote) (*model.CityNote, error)
	Update(ctx context.Context, note *model.CityNote) (*model.CityNote, error)
	Delete(ctx context.Context, id int) error
}

type LocationStore interface {
	List(ctx context.Context) ([]model.Location, error)
	ListIDs(ctx context.Context) ([]int, error)
	ListByCity(ctx context.Context, cityID int) ([]model.Location, error)
	GetByID(ctx context.Context, id int) (*model.Location, error)
	Create(ctx context.Context, location *model.Location) (*model.Location, error)
	Delete(ctx context.Context, id int) error
}

type LocationNoteStore interface {
	List(ctx context.Context) ([]model.LocationNote, error)
	ListByLocation(ctx context.Context, locationID int) ([]model.LocationNote, error)
	GetByID(ctx context.Context, id int) (*model.LocationNote, error)
	Create(ctx context.Context, note *model.LocationNote) (*model.LocationNote, error)
	Update(ctx context.Context, note *model.LocationNote) (*model.LocationNote, error)
	Delete(ctx context.Context, id int) error
}

// JournalStore holds operations spanning every table.
type JournalStore interface {
	// Truncate removes every row and restarts the id sequences.
	Truncate(ctx context.Context) error
}

// Not-found codes, one per entity.
const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeCityNotFound         = "CITY_NOT_FOUND"
	CodeCityNoteNotFound     = "CITY_NOTE_NOT_FOUND"
	CodeLocationNotFound     = "LOCATION_NOT_FOUND"
	CodeLocationNoteNotFound = "LOCATION_NOTE_NOT_FOUND"
)

// NotFound builds the 404 returned when entity has no row for the lookup.
func NotFound(entity, code string) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("%s not found", entity), true, &code)
}
