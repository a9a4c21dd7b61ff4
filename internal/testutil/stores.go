package testutil

import (
	"context"
	"time"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	_ repository.UserStore         = memoryUsers{}
	_ repository.CityStore         = memoryCities{}
	_ repository.CityNoteStore     = memoryCityNotes{}
	_ repository.LocationStore     = memoryLocations{}
	_ repository.LocationNoteStore = memoryLocationNotes{}
	_ repository.JournalStore      = memoryJournal{}
)

func uniqueViolation(table, constraint string) error {
	return &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      table,
		ConstraintName: constraint,
	}
}

func foreignKeyViolation(table, column string) error {
	return &pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  table,
		ColumnName: column,
	}
}

func now() *time.Time {
	t := time.Now().UTC()
	return &t
}

// users

type memoryUsers struct{ m *Memory }

func (s memoryUsers) List(ctx context.Context) ([]model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.ReadErr != nil {
		return nil, s.m.ReadErr
	}
	return append([]model.User{}, s.m.users...), nil
}

func (s memoryUsers) ListIDs(ctx context.Context) ([]int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return ids(s.m.users, func(u model.User) int { return u.ID }), nil
}

func (s memoryUsers) get(match func(model.User) bool) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := find(s.m.users, match)
	if !ok {
		return nil, repository.NotFound("User", repository.CodeUserNotFound)
	}
	return &u, nil
}

func (s memoryUsers) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.get(func(u model.User) bool { return u.ID == id })
}

func (s memoryUsers) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.get(func(u model.User) bool { return u.Username == username })
}

func (s memoryUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.get(func(u model.User) bool { return u.Email == email })
}

// conflict reports the unique constraint user would break, ignoring its own row.
func (s memoryUsers) conflict(user *model.User) error {
	for _, u := range s.m.users {
		if u.ID == user.ID {
			continue
		}
		if u.Email == user.Email {
			return uniqueViolation("users", "users_email_key")
		}
		if u.Username == user.Username {
			return uniqueViolation("users", "users_username_key")
		}
	}
	return nil
}

func (s memoryUsers) Create(ctx context.Context, user *model.User) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	created := *user
	created.ID = 0
	if err := s.conflict(&created); err != nil {
		return nil, err
	}

	created.ID, created.CreatedAt = s.m.next("users")
	s.m.users = append(s.m.users, created)
	return &created, nil
}

func (s memoryUsers) Update(ctx context.Context, user *model.User) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.users {
		if s.m.users[i].ID != user.ID {
			continue
		}
		if err := s.conflict(user); err != nil {
			return nil, err
		}
		updated := *user
		updated.CreatedAt = s.m.users[i].CreatedAt
		updated.UpdatedAt = now()
		s.m.users[i] = updated
		return &updated, nil
	}
	return nil, repository.NotFound("User", repository.CodeUserNotFound)
}

func (s memoryUsers) Delete(ctx context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.users, func(u model.User) bool { return u.ID == id }); !ok {
		return repository.NotFound("User", repository.CodeUserNotFound)
	}
	s.m.dropUser(id)
	return nil
}

// cities

type memoryCities struct{ m *Memory }

func (s memoryCities) List(ctx context.Context) ([]model.City, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.ReadErr != nil {
		return nil, s.m.ReadErr
	}
	return append([]model.City{}, s.m.cities...), nil
}

func (s memoryCities) ListIDs(ctx context.Context) ([]int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return ids(s.m.cities, func(c model.City) int { return c.ID }), nil
}

func (s memoryCities) ListByUser(ctx context.Context, userID int) ([]model.City, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return filter(s.m.cities, func(c model.City) bool { return c.UserID == userID }), nil
}

func (s memoryCities) GetByID(ctx context.Context, id int) (*model.City, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := find(s.m.cities, func(c model.City) bool { return c.ID == id })
	if !ok {
		return nil, repository.NotFound("City", repository.CodeCityNotFound)
	}
	return &c, nil
}

func (s memoryCities) ExistsTriple(ctx context.Context, cityName, country string, userID int) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	_, ok := find(s.m.cities, func(c model.City) bool {
		return c.CityName == cityName && c.Country == country && c.UserID == userID
	})
	return ok, nil
}

func (s memoryCities) Create(ctx context.Context, city *model.City) (*model.City, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.users, func(u model.User) bool { return u.ID == city.UserID }); !ok {
		return nil, foreignKeyViolation("cities", "user_id")
	}
	_, dup := find(s.m.cities, func(c model.City) bool {
		return c.CityName == city.CityName && c.Country == city.Country && c.UserID == city.UserID
	})
	if dup {
		return nil, uniqueViolation("cities", "unique_city_country")
	}

	created := *city
	created.ID, created.CreatedAt = s.m.next("cities")
	s.m.cities = append(s.m.cities, created)
	return &created, nil
}

func (s memoryCities) Delete(ctx context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.cities, func(c model.City) bool { return c.ID == id }); !ok {
		return repository.NotFound("City", repository.CodeCityNotFound)
	}
	s.m.dropCity(id)
	return nil
}

// city notes

type memoryCityNotes struct{ m *Memory }

func (s memoryCityNotes) List(ctx context.Context) ([]model.CityNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.ReadErr != nil {
		return nil, s.m.ReadErr
	}
	return append([]model.CityNote{}, s.m.cityNotes...), nil
}

func (s memoryCityNotes) ListByCity(ctx context.Context, cityID int) ([]model.CityNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return filter(s.m.cityNotes, func(n model.CityNote) bool { return n.CityID == cityID }), nil
}

func (s memoryCityNotes) GetByID(ctx context.Context, id int) (*model.CityNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	n, ok := find(s.m.cityNotes, func(n model.CityNote) bool { return n.ID == id })
	if !ok {
		return nil, repository.NotFound("City note", repository.CodeCityNoteNotFound)
	}
	return &n, nil
}

func (s memoryCityNotes) Create(ctx context.Context, note *model.CityNote) (*model.CityNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.cities, func(c model.City) bool { return c.ID == note.CityID }); !ok {
		return nil, foreignKeyViolation("cityNotes", "city_id")
	}

	created := *note
	created.ID, created.CreatedAt = s.m.next("cityNotes")
	s.m.cityNotes = append(s.m.cityNotes, created)
	return &created, nil
}

func (s memoryCityNotes) Update(ctx context.Context, note *model.CityNote) (*model.CityNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.cityNotes {
		if s.m.cityNotes[i].ID == note.ID {
			s.m.cityNotes[i].NoteBody = note.NoteBody
			s.m.cityNotes[i].NoteType = note.NoteType
			s.m.cityNotes[i].UpdatedAt = now()
			updated := s.m.cityNotes[i]
			return &updated, nil
		}
	}
	return nil, repository.NotFound("City note", repository.CodeCityNoteNotFound)
}

func (s memoryCityNotes) Delete(ctx context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.cityNotes, func(n model.CityNote) bool { return n.ID == id }); !ok {
		return repository.NotFound("City note", repository.CodeCityNoteNotFound)
	}
	s.m.cityNotes = filter(s.m.cityNotes, func(n model.CityNote) bool { return n.ID != id })
	return nil
}

// locations

type memoryLocations struct{ m *Memory }

func (s memoryLocations) List(ctx context.Context) ([]model.Location, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.ReadErr != nil {
		return nil, s.m.ReadErr
	}
	return append([]model.Location{}, s.m.locations...), nil
}

func (s memoryLocations) ListIDs(ctx context.Context) ([]int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return ids(s.m.locations, func(l model.Location) int { return l.ID }), nil
}

func (s memoryLocations) ListByCity(ctx context.Context, cityID int) ([]model.Location, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return filter(s.m.locations, func(l model.Location) bool { return l.CityID == cityID }), nil
}

func (s memoryLocations) GetByID(ctx context.Context, id int) (*model.Location, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	l, ok := find(s.m.locations, func(l model.Location) bool { return l.ID == id })
	if !ok {
		return nil, repository.NotFound("Location", repository.CodeLocationNotFound)
	}
	return &l, nil
}

func (s memoryLocations) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.cities, func(c model.City) bool { return c.ID == location.CityID }); !ok {
		return nil, foreignKeyViolation("locations", "city_id")
	}
	if _, ok := find(s.m.users, func(u model.User) bool { return u.ID == location.UserID }); !ok {
		return nil, foreignKeyViolation("locations", "user_id")
	}

	created := *location
	created.ID, created.CreatedAt = s.m.next("locations")
	s.m.locations = append(s.m.locations, created)
	return &created, nil
}

func (s memoryLocations) Delete(ctx context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.locations, func(l model.Location) bool { return l.ID == id }); !ok {
		return repository.NotFound("Location", repository.CodeLocationNotFound)
	}
	s.m.dropLocation(id)
	return nil
}

// location notes

type memoryLocationNotes struct{ m *Memory }

func (s memoryLocationNotes) List(ctx context.Context) ([]model.LocationNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.ReadErr != nil {
		return nil, s.m.ReadErr
	}
	return append([]model.LocationNote{}, s.m.locationNotes...), nil
}

func (s memoryLocationNotes) ListByLocation(ctx context.Context, locationID int) ([]model.LocationNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return filter(s.m.locationNotes, func(n model.LocationNote) bool { return n.LocationID == locationID }), nil
}

func (s memoryLocationNotes) GetByID(ctx context.Context, id int) (*model.LocationNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	n, ok := find(s.m.locationNotes, func(n model.LocationNote) bool { return n.ID == id })
	if !ok {
		return nil, repository.NotFound("Location note", repository.CodeLocationNoteNotFound)
	}
	return &n, nil
}

func (s memoryLocationNotes) Create(ctx context.Context, note *model.LocationNote) (*model.LocationNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.locations, func(l model.Location) bool { return l.ID == note.LocationID }); !ok {
		return nil, foreignKeyViolation("locationNotes", "location_id")
	}

	created := *note
	created.ID, created.CreatedAt = s.m.next("locationNotes")
	s.m.locationNotes = append(s.m.locationNotes, created)
	return &created, nil
}

func (s memoryLocationNotes) Update(ctx context.Context, note *model.LocationNote) (*model.LocationNote, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.locationNotes {
		if s.m.locationNotes[i].ID == note.ID {
			s.m.locationNotes[i].NoteBody = note.NoteBody
			s.m.locationNotes[i].UpdatedAt = now()
			updated := s.m.locationNotes[i]
			return &updated, nil
		}
	}
	return nil, repository.NotFound("Location note", repository.CodeLocationNoteNotFound)
}

func (s memoryLocationNotes) Delete(ctx context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := find(s.m.locationNotes, func(n model.LocationNote) bool { return n.ID == id }); !ok {
		return repository.NotFound("Location note", repository.CodeLocationNoteNotFound)
	}
	s.m.locationNotes = filter(s.m.locationNotes, func(n model.LocationNote) bool { return n.ID != id })
	return nil
}

// journal

type memoryJournal struct{ m *Memory }

func (s memoryJournal) Truncate(ctx context.Context) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	s.m.users = nil
	s.m.cities = nil
	s.m.cityNotes = nil
	s.m.locations = nil
	s.m.locationNotes = nil
	s.m.seq = map[string]int{}
	return nil
}
