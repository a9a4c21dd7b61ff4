package model

// Projections. Each view embeds only the relations that lead away from the
// entity that produced it, so nested output never loops back to its parent.

// UserSummary is a user without relations.
type UserSummary struct {
	ID          int     `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	TravelStyle *string `json:"travel_style"`
}

// CitySummary is a city without relations.
type CitySummary struct {
	ID       int    `json:"id"`
	CityName string `json:"city_name"`
	Country  string `json:"country"`
	UserID   int    `json:"user_id"`
}

// LocationSummary is a location without relations.
type LocationSummary struct {
	ID           int     `json:"id"`
	LocationName string  `json:"location_name"`
	DateVisited  *string `json:"date_visited"`
	Rating       int     `json:"rating"`
	Category     string  `json:"category"`
	AvgCost      int     `json:"avg_cost"`
	GoogleMapURL *string `json:"google_map_url"`
	Website      *string `json:"website"`
	CityID       int     `json:"city_id"`
	UserID       int     `json:"user_id"`
}

// CityNoteSummary is a city note without its city.
type CityNoteSummary struct {
	ID       int    `json:"id"`
	NoteBody string `json:"note_body"`
	NoteType string `json:"note_type"`
	CityID   int    `json:"city_id"`
}

// LocationNoteSummary is a location note without its location.
type LocationNoteSummary struct {
	ID         int    `json:"id"`
	NoteBody   string `json:"note_body"`
	LocationID int    `json:"location_id"`
}

// LocationWithNotes is a location nested under a city.
type LocationWithNotes struct {
	LocationSummary
	LocationNotes []LocationNoteSummary `json:"location_notes"`
}

// CityWithChildren is a city nested under a user.
type CityWithChildren struct {
	CitySummary
	Locations []LocationWithNotes `json:"locations"`
	CityNotes []CityNoteSummary   `json:"city_notes"`
}

// UserView is the representation of a user.
type UserView struct {
	UserSummary
	Cities []CityWithChildren `json:"cities"`
}

// CityView is the representation of a city.
type CityView struct {
	CitySummary
	User      UserSummary         `json:"user"`
	Locations []LocationWithNotes `json:"locations"`
	CityNotes []CityNoteSummary   `json:"city_notes"`
}

// LocationView is the representation of a location.
type LocationView struct {
	LocationSummary
	City          CitySummary           `json:"city"`
	User          UserSummary           `json:"user"`
	LocationNotes []LocationNoteSummary `json:"location_notes"`
}

// CityNoteView is the representation of a city note.
type CityNoteView struct {
	CityNoteSummary
	City CitySummary `json:"city"`
}

// LocationNoteView is the representation of a location note.
type LocationNoteView struct {
	LocationNoteSummary
	Location LocationSummary `json:"location"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		TravelStyle: u.TravelStyle,
	}
}

func (c *City) Summary() CitySummary {
	return CitySummary{
		ID:       c.ID,
		CityName: c.CityName,
		Country:  c.Country,
		UserID:   c.UserID,
	}
}

func (l *Location) Summary() LocationSummary {
	return LocationSummary{
		ID:           l.ID,
		LocationName: l.LocationName,
		DateVisited:  FormatDateVisited(l.DateVisited),
		Rating:       l.Rating,
		Category:     l.Category,
		AvgCost:      l.AvgCost,
		GoogleMapURL: l.GoogleMapURL,
		Website:      l.Website,
		CityID:       l.CityID,
		UserID:       l.UserID,
	}
}

func (n *CityNote) Summary() CityNoteSummary {
	return CityNoteSummary{
		ID:       n.ID,
		NoteBody: n.NoteBody,
		NoteType: n.NoteType,
		CityID:   n.CityID,
	}
}

func (n *LocationNote) Summary() LocationNoteSummary {
	return LocationNoteSummary{
		ID:         n.ID,
		NoteBody:   n.NoteBody,
		LocationID: n.LocationID,
	}
}

// SummarizeCityNotes never returns nil so empty collections encode as [].
func SummarizeCityNotes(notes []CityNote) []CityNoteSummary {
	out := make([]CityNoteSummary, 0, len(notes))
	for i := range notes {
		out = append(out, notes[i].Summary())
	}
	return out
}

// SummarizeLocationNotes never returns nil so empty collections encode as [].
func SummarizeLocationNotes(notes []LocationNote) []LocationNoteSummary {
	out := make([]LocationNoteSummary, 0, len(notes))
	for i := range notes {
		out = append(out, notes[i].Summary())
	}
	return out
}
