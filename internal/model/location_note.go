package model

import "fmt"

type LocationNote struct {
	Base
	NoteBody   string `db:"note_body"`
	LocationID int    `db:"location_id"`
}

func NewLocationNote(noteBody string, locationID int) (*LocationNote, error) {
	n := &LocationNote{
		NoteBody:   noteBody,
		LocationID: locationID,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *LocationNote) Validate() error {
	var v ValidationErrors
	requireText(&v, "note_body", n.NoteBody)
	return v.Err()
}

// Apply replaces note_body; it is the only updatable attribute.
func (n *LocationNote) Apply(attrs map[string]any) error {
	updated := *n
	var v ValidationErrors

	for name, raw := range attrs {
		if name != "note_body" {
			v.Add(name, fmt.Sprintf("%s is not an updatable attribute.", name))
			continue
		}
		s, ok := raw.(string)
		if !ok {
			v.Add(name, "note_body must be a string.")
			continue
		}
		updated.NoteBody = s
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
