package model

import (
	"time"
)

// Location categories.
var Categories = []string{
	"Shopping",
	"Mart",
	"FoodDrink",
	"IndoorActivity",
	"OutdoorActivity",
	"Accommodation",
	"Other",
}

// Rating and average cost bounds, upper bound exclusive.
const (
	RatingLimit  = 5 // 0..4
	AvgCostLimit = 4 // 0..3
)

// DateVisitedLayout is the wire format of Location.DateVisited
// ("YYYY-MM-DDTHH:MM:SS.ffffffZ").
const DateVisitedLayout = "2006-01-02T15:04:05.000000Z"

// dateVisitedParseLayout accepts any (or no) fractional seconds.
const dateVisitedParseLayout = "2006-01-02T15:04:05Z"

// Location is a place inside a city, rated by the user who visited it.
type Location struct {
	Base
	LocationName string     `db:"location_name"`
	DateVisited  *time.Time `db:"date_visited"`
	Rating       int        `db:"rating"`
	Category     string     `db:"category"`
	AvgCost      int        `db:"avg_cost"`
	GoogleMapURL *string    `db:"google_map_url"`
	Website      *string    `db:"website"`
	CityID       int        `db:"city_id"`
	UserID       int        `db:"user_id"`
}

// LocationParams are the constructor arguments of a Location.
type LocationParams struct {
	LocationName string
	DateVisited  *time.Time
	Rating       int
	Category     string
	AvgCost      int
	GoogleMapURL *string
	Website      *string
	CityID       int
	UserID       int
}

// NewLocation builds a validated location. CityID and UserID membership is
// checked by the service.
func NewLocation(p LocationParams) (*Location, error) {
	l := &Location{
		LocationName: p.LocationName,
		DateVisited:  p.DateVisited,
		Rating:       p.Rating,
		Category:     p.Category,
		AvgCost:      p.AvgCost,
		GoogleMapURL: p.GoogleMapURL,
		Website:      p.Website,
		CityID:       p.CityID,
		UserID:       p.UserID,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Location) Validate() error {
	var v ValidationErrors
	requireText(&v, "location_name", l.LocationName)
	requireOneOf(&v, "category", l.Category, Categories)
	requireRange(&v, "avg_cost", l.AvgCost, 0, AvgCostLimit)
	requireRange(&v, "rating", l.Rating, 0, RatingLimit)
	return v.Err()
}

// ParseDateVisited parses the wire date. An empty string means "not set".
func ParseDateVisited(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateVisitedParseLayout, value)
	if err != nil {
		var v ValidationErrors
		v.Add("date_visited", value+" does not match format YYYY-MM-DDTHH:MM:SS.ffffffZ.")
		return nil, v
	}

	return &t, nil
}

// FormatDateVisited renders t in DateVisitedLayout; nil stays nil.
func FormatDateVisited(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateVisitedLayout)
	return &s
}
