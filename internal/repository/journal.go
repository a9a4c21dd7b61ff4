package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/travelog/internal/server"
)

type JournalRepository struct {
	server *server.Server
}

func NewJournalRepository(s *server.Server) *JournalRepository {
	return &JournalRepository{server: s}
}

func (r *JournalRepository) Truncate(ctx context.Context) error {
	stmt := `TRUNCATE users, cities, "cityNotes", locations, "locationNotes" RESTART IDENTITY CASCADE`

	if _, err := r.server.DB.Pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate journal tables: %w", err)
	}

	return nil
}
