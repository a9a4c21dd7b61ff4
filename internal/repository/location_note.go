package repository

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/jackc/pgx/v5"
)

const locationNotesTable = "locationNotes"

type LocationNoteRepository struct {
	server *server.Server
}

func NewLocationNoteRepository(s *server.Server) *LocationNoteRepository {
	return &LocationNoteRepository{server: s}
}

func (r *LocationNoteRepository) List(ctx context.Context) ([]model.LocationNote, error) {
	return selectAll[model.LocationNote](ctx, r.server.DB.Pool, locationNotesTable,
		`SELECT * FROM "locationNotes" ORDER BY id`, nil)
}

func (r *LocationNoteRepository) ListByLocation(ctx context.Context, locationID int) ([]model.LocationNote, error) {
	return selectAll[model.LocationNote](ctx, r.server.DB.Pool, locationNotesTable,
		`SELECT * FROM "locationNotes" WHERE location_id = @location_id ORDER BY id`,
		pgx.NamedArgs{"location_id": locationID})
}

func (r *LocationNoteRepository) GetByID(ctx context.Context, id int) (*model.LocationNote, error) {
	return selectOne[model.LocationNote](ctx, r.server.DB.Pool, locationNotesTable,
		`SELECT * FROM "locationNotes" WHERE id = @id`,
		pgx.NamedArgs{"id": id},
		NotFound("Location note", CodeLocationNoteNotFound))
}

func (r *LocationNoteRepository) Create(ctx context.Context, note *model.LocationNote) (*model.LocationNote, error) {
	stmt := `
		INSERT INTO "locationNotes" (note_body, location_id)
		VALUES (@note_body, @location_id)
		RETURNING *
	`

	return write[model.LocationNote](ctx, r.server.DB.Pool, locationNotesTable, stmt, pgx.NamedArgs{
		"note_body":   note.NoteBody,
		"location_id": note.LocationID,
	}, nil)
}

func (r *LocationNoteRepository) Update(ctx context.Context, note *model.LocationNote) (*model.LocationNote, error) {
	stmt := `
		UPDATE "locationNotes"
		SET note_body = @note_body,
			updated_at = now()
		WHERE id = @id
		RETURNING *
	`

	return write[model.LocationNote](ctx, r.server.DB.Pool, locationNotesTable, stmt, pgx.NamedArgs{
		"id":        note.ID,
		"note_body": note.NoteBody,
	}, NotFound("Location note", CodeLocationNoteNotFound))
}

func (r *LocationNoteRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.server.DB.Pool, locationNotesTable, id, NotFound("Location note", CodeLocationNoteNotFound))
}
