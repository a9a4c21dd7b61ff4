// Package model holds the travel journal entities, their field rules and
// the projections used to render them.
//
// Entities never point at each other: children store their parent ids and
// parent-side collections are loaded by the service layer. Validators are
// plain functions run by a single constructor/update path and report every
// violation at once through ValidationErrors.
package model

import "time"

// Base carries the columns every table shares.
type Base struct {
	ID        int        `json:"id" db:"id"`
	CreatedAt time.Time  `json:"-" db:"created_at"`
	UpdatedAt *time.Time `json:"-" db:"updated_at"`
}
