package repository

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/jackc/pgx/v5"
)

const usersTable = "users"

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return selectAll[model.User](ctx, r.server.DB.Pool, usersTable,
		`SELECT * FROM users ORDER BY id`, nil)
}

func (r *UserRepository) ListIDs(ctx context.Context) ([]int, error) {
	return selectIDs(ctx, r.server.DB.Pool, usersTable)
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	return selectOne[model.User](ctx, r.server.DB.Pool, usersTable,
		`SELECT * FROM users WHERE id = @id`,
		pgx.NamedArgs{"id": id},
		NotFound("User", CodeUserNotFound))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return selectOne[model.User](ctx, r.server.DB.Pool, usersTable,
		`SELECT * FROM users WHERE username = @username`,
		pgx.NamedArgs{"username": username},
		NotFound("User", CodeUserNotFound))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return selectOne[model.User](ctx, r.server.DB.Pool, usersTable,
		`SELECT * FROM users WHERE email = @email`,
		pgx.NamedArgs{"email": email},
		NotFound("User", CodeUserNotFound))
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	stmt := `
		INSERT INTO users (email, username, travel_style)
		VALUES (@email, @username, @travel_style)
		RETURNING *
	`

	return write[model.User](ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{
		"email":        user.Email,
		"username":     user.Username,
		"travel_style": user.TravelStyle,
	}, nil)
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	stmt := `
		UPDATE users
		SET email = @email,
			username = @username,
			travel_style = @travel_style,
			updated_at = now()
		WHERE id = @id
		RETURNING *
	`

	return write[model.User](ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{
		"id":           user.ID,
		"email":        user.Email,
		"username":     user.Username,
		"travel_style": user.TravelStyle,
	}, NotFound("User", CodeUserNotFound))
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.server.DB.Pool, usersTable, id, NotFound("User", CodeUserNotFound))
}
