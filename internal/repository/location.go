package repository

import (
	"context"

	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/jackc/pgx/v5"
)

const locationsTable = "locations"

type LocationRepository struct {
	server *server.Server
}

func NewLocationRepository(s *server.Server) *LocationRepository {
	return &LocationRepository{server: s}
}

func (r *LocationRepository) List(ctx context.Context) ([]model.Location, error) {
	return selectAll[model.Location](ctx, r.server.DB.Pool, locationsTable,
		`SELECT * FROM locations ORDER BY id`, nil)
}

func (r *LocationRepository) ListIDs(ctx context.Context) ([]int, error) {
	return selectIDs(ctx, r.server.DB.Pool, locationsTable)
}

func (r *LocationRepository) ListByCity(ctx context.Context, cityID int) ([]model.Location, error) {
	return selectAll[model.Location](ctx, r.server.DB.Pool, locationsTable,
		`SELECT * FROM locations WHERE city_id = @city_id ORDER BY id`,
		pgx.NamedArgs{"city_id": cityID})
}

func (r *LocationRepository) GetByID(ctx context.Context, id int) (*model.Location, error) {
	return selectOne[model.Location](ctx, r.server.DB.Pool, locationsTable,
		`SELECT * FROM locations WHERE id = @id`,
		pgx.NamedArgs{"id": id},
		NotFound("Location", CodeLocationNotFound))
}

func (r *LocationRepository) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	stmt := `
		INSERT INTO locations (
			location_name,
			date_visited,
			rating,
			category,
			avg_cost,
			google_map_url,
			website,
			city_id,
			user_id
		)
		VALUES (
			@location_name,
			@date_visited,
			@rating,
			@category,
			@avg_cost,
			@google_map_url,
			@website,
			@city_id,
			@user_id
		)
		RETURNING *
	`

	return write[model.Location](ctx, r.server.DB.Pool, locationsTable, stmt, pgx.NamedArgs{
		"location_name":  location.LocationName,
		"date_visited":   location.DateVisited,
		"rating":         location.Rating,
		"category":       location.Category,
		"avg_cost":       location.AvgCost,
		"google_map_url": location.GoogleMapURL,
		"website":        location.Website,
		"city_id":        location.CityID,
		"user_id":        location.UserID,
	}, nil)
}

func (r *LocationRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.server.DB.Pool, locationsTable, id, NotFound("Location", CodeLocationNotFound))
}
