package model

import "fmt"

// Note types accepted for CityNote.NoteType.
const (
	NoteTypeSafety         = "Safety"
	NoteTypeCommunication  = "Communication"
	NoteTypeTransportation = "Transportation"
	NoteTypeOther          = "Other"
)

var NoteTypes = []string{
	NoteTypeSafety,
	NoteTypeCommunication,
	NoteTypeTransportation,
	NoteTypeOther,
}

type CityNote struct {
	Base
	NoteBody string `db:"note_body"`
	NoteType string `db:"note_type"`
	CityID   int    `db:"city_id"`
}

// NewCityNote builds a note; an empty noteType means NoteTypeOther.
func NewCityNote(noteBody, noteType string, cityID int) (*CityNote, error) {
	if noteType == "" {
		noteType = NoteTypeOther
	}
	n := &CityNote{
		NoteBody: noteBody,
		NoteType: noteType,
		CityID:   cityID,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *CityNote) Validate() error {
	var v ValidationErrors
	requireText(&v, "note_body", n.NoteBody)
	requireOneOf(&v, "note_type", n.NoteType, NoteTypes)
	return v.Err()
}

// Apply replaces note_body and/or note_type.
func (n *CityNote) Apply(attrs map[string]any) error {
	updated := *n
	var v ValidationErrors

	for name, raw := range attrs {
		s, ok := raw.(string)
		switch {
		case name != "note_body" && name != "note_type":
			v.Add(name, fmt.Sprintf("%s is not an updatable attribute.", name))
		case !ok:
			v.Add(name, fmt.Sprintf("%s must be a string.", name))
		case name == "note_body":
			updated.NoteBody = s
		default:
			updated.NoteType = s
		}
	}

	if len(v) > 0 {
		return v
	}
	if err := updated.Validate(); err != nil {
		return err
	}

	*n = updated
	return nil
}
