package model

import (
	"fmt"
	"strings"
)

// TravelStyles is the vocabulary accepted for User.TravelStyle.
var TravelStyles = []string{
	"Thrill-seeker",
	"Foodie",
	"Relaxer",
	"Experiencer",
	"Culture Seeker",
	"Nature",
	"Influencer",
	"Party Animal",
	"Shopper",
	"Luxuriate",
}

// User owns cities and locations. Deleting a user removes both.
type User struct {
	Base
	Email       string  `db:"email"`
	Username    string  `db:"username"`
	TravelStyle *string `db:"travel_style"`
}

// NewUser builds a validated user. travelStyle may be nil.
func NewUser(email, username string, travelStyle *string) (*User, error) {
	u := &User{
		Email:       email,
		Username:    username,
		TravelStyle: travelStyle,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks every user field rule.
func (u *User) Validate() error {
	var v ValidationErrors

	v.Merge(ValidateEmail(u.Email))

	if u.Username == "" {
		v.Add("username", "username must be provided.")
	}

	if u.TravelStyle != nil {
		requireOneOf(&v, "travel_style", *u.TravelStyle, TravelStyles)
	}

	return v.Err()
}

// UsernameFromEmail returns the local part of an address.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Apply replaces the attributes named in attrs and re-validates the user.
// Unknown attribute names and values of the wrong type are reported as
// violations; the user is left untouched when any violation occurs.
func (u *User) Apply(attrs map[string]any) error {
	updated := *u
	var v ValidationErrors

	for name, raw := range attrs {
		switch name {
		case "email":
			if s, ok := raw.(string); ok {
				updated.Email = s
			} else {
				v.Add(name, "email must be a string.")
			}
		case "username":
			if s, ok := raw.(string); ok {
				updated.Username = s
			} else {
				v.Add(name, "username must be a string.")
			}
		case "travel_style":
			switch s := raw.(type) {
			case nil:
				updated.TravelStyle = nil
			case string:
				updated.TravelStyle = &s
			default:
				v.Add(name, fmt.Sprintf("%v not an allowed value for travel_style.", raw))
			}
		default:
			v.Add(name, fmt.Sprintf("%s is not an updatable attribute.", name))
		}
	}

	if len(v) > 0 {
		return v
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*u = updated
	return nil
}
