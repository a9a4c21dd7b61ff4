package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// selectAll runs stmt and maps every row onto T by column name.
func selectAll[T any](ctx context.Context, pool *pgxpool.Pool, table, stmt string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query on table:%s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", table, err)
	}

	return items, nil
}

// selectOne returns notFound when stmt yields no row.
func selectOne[T any](ctx context.Context, pool *pgxpool.Pool, table, stmt string, args pgx.NamedArgs, notFound *errs.HTTPError) (*T, error) {
	rows, err := pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query on table:%s: %w", table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to collect row from table:%s: %w", table, err)
	}

	return &item, nil
}

// write runs an INSERT/UPDATE ... RETURNING * statement.
func write[T any](ctx context.Context, pool *pgxpool.Pool, table, stmt string, args pgx.NamedArgs, notFound *errs.HTTPError) (*T, error) {
	rows, err := pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute write query on table:%s: %w", table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to write row to table:%s: %w", table, err)
	}

	return &item, nil
}

func selectIDs(ctx context.Context, pool *pgxpool.Pool, table string) ([]int, error) {
	rows, err := pool.Query(ctx, fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, pgx.Identifier{table}.Sanitize()))
	if err != nil {
		return nil, fmt.Errorf("failed to execute id query on table:%s: %w", table, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to collect ids from table:%s: %w", table, err)
	}

	return ids, nil
}

// deleteByID removes one row. Dependent rows go with it through the
// ON DELETE CASCADE foreign keys.
func deleteByID(ctx context.Context, pool *pgxpool.Pool, table string, id int, notFound *errs.HTTPError) error {
	stmt := fmt.Sprintf(`DELETE FROM %s WHERE id = @id`, pgx.Identifier{table}.Sanitize())

	tag, err := pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from table:%s id=%d: %w", table, id, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound
	}

	return nil
}
