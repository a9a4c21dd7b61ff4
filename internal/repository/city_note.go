package repository

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/jackc/pgx/v5"
)

const cityNotesTable = "cityNotes"

type CityNoteRepository struct {
	server *server.Server
}

func NewCityNoteRepository(s *server.Server) *CityNoteRepository {
	return &CityNoteRepository{server: s}
}

func (r *CityNoteRepository) List(ctx context.Context) ([]model.CityNote, error) {
	return selectAll[model.CityNote](ctx, r.server.DB.Pool, cityNotesTable,
		`SELECT * FROM "cityNotes" ORDER BY id`, nil)
}

func (r *CityNoteRepository) ListByCity(ctx context.Context, cityID int) ([]model.CityNote, error) {
	return selectAll[model.CityNote](ctx, r.server.DB.Pool, cityNotesTable,
		`SELECT * FROM "cityNotes" WHERE city_id = @city_id ORDER BY id`,
		pgx.NamedArgs{"city_id": cityID})
}

func (r *CityNoteRepository) GetByID(ctx context.Context, id int) (*model.CityNote, error) {
	return selectOne[model.CityNote](ctx, r.server.DB.Pool, cityNotesTable,
		`SELECT * FROM "cityNotes" WHERE id = @id`,
		pgx.NamedArgs{"id": id},
		NotFound("City note", CodeCityNoteNotFound))
}

func (r *CityNoteRepository) Create(ctx context.Context, note *model.CityNote) (*model.CityNote, error) {
	stmt := `
		INSERT INTO "cityNotes" (note_body, note_type, city_id)
		VALUES (@note_body, @note_type, @city_id)
		RETURNING *
	`

	return write[model.CityNote](ctx, r.server.DB.Pool, cityNotesTable, stmt, pgx.NamedArgs{
		"note_body": note.NoteBody,
		"note_type": note.NoteType,
		"city_id":   note.CityID,
	}, nil)
}

func (r *CityNoteRepository) Update(ctx context.Context, note *model.CityNote) (*model.CityNote, error) {
	stmt := `
		UPDATE "cityNotes"
		SET note_body = @note_body,
			note_type = @note_type,
			updated_at = now()
		WHERE id = @id
		RETURNING *
	`

	return write[model.CityNote](ctx, r.server.DB.Pool, cityNotesTable, stmt, pgx.NamedArgs{
		"id":        note.ID,
		"note_body": note.NoteBody,
		"note_type": note.NoteType,
	}, NotFound("City note", CodeCityNoteNotFound))
}

func (r *CityNoteRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.server.DB.Pool, cityNotesTable, id, NotFound("City note", CodeCityNoteNotFound))
}
