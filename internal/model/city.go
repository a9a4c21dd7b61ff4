package model

// City is a place a user visited. (CityName, Country, UserID) is unique.
type City struct {
	Base
	CityName string `db:"city_name"`
	Country  string `db:"country"`
	UserID   int    `db:"user_id"`
}

// NewCity builds a city and checks its text fields. Whether UserID exists
// is checked by the service against the users table.
func NewCity(cityName, country string, userID int) (*City, error) {
	c := &City{
		CityName: cityName,
		Country:  country,
		UserID:   userID,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *City) Validate() error {
	var v ValidationErrors
	requireText(&v, "city_name", c.CityName)
	requireText(&v, "country", c.Country)
	return v.Err()
}
