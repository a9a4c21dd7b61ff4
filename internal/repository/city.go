package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/jackc/pgx/v5"
)

const citiesTable = "cities"

type CityRepository struct {
	server *server.Server
}

func NewCityRepository(s *server.Server) *CityRepository {
	return &CityRepository{server: s}
}

func (r *CityRepository) List(ctx context.Context) ([]model.City, error) {
	return selectAll[model.City](ctx, r.server.DB.Pool, citiesTable,
		`SELECT * FROM cities ORDER BY id`, nil)
}

func (r *CityRepository) ListIDs(ctx context.Context) ([]int, error) {
	return selectIDs(ctx, r.server.DB.Pool, citiesTable)
}

func (r *CityRepository) ListByUser(ctx context.Context, userID int) ([]model.City, error) {
	return selectAll[model.City](ctx, r.server.DB.Pool, citiesTable,
		`SELECT * FROM cities WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
}

func (r *CityRepository) GetByID(ctx context.Context, id int) (*model.City, error) {
	return selectOne[model.City](ctx, r.server.DB.Pool, citiesTable,
		`SELECT * FROM cities WHERE id = @id`,
		pgx.NamedArgs{"id": id},
		NotFound("City", CodeCityNotFound))
}

func (r *CityRepository) ExistsTriple(ctx context.Context, cityName, country string, userID int) (bool, error) {
	stmt := `
		SELECT EXISTS (
			SELECT 1 FROM cities
			WHERE city_name = @city_name AND country = @country AND user_id = @user_id
		)
	`

	var exists bool
	err := r.server.DB.Pool.QueryRow(ctx, stmt, pgx.NamedArgs{
		"city_name": cityName,
		"country":   country,
		"user_id":   userID,
	}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check city uniqueness for user_id=%d: %w", userID, err)
	}

	return exists, nil
}

func (r *CityRepository) Create(ctx context.Context, city *model.City) (*model.City, error) {
	stmt := `
		INSERT INTO cities (city_name, country, user_id)
		VALUES (@city_name, @country, @user_id)
		RETURNING *
	`

	return write[model.City](ctx, r.server.DB.Pool, citiesTable, stmt, pgx.NamedArgs{
		"city_name": city.CityName,
		"country":   city.Country,
		"user_id":   city.UserID,
	}, nil)
}

func (r *CityRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.server.DB.Pool, citiesTable, id, NotFound("City", CodeCityNotFound))
}
