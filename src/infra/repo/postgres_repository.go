package repo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokesapi/src/core/domain"
	"jokesapi/src/infra/db"
)

const dialectPostgres = "postgres"
const tableJokes = "jokes"

// PostgresJokeRepository implements ports.JokeRepository using pgx.
// Fixed-shape statements use constant SQL; the listing queries are built
// with goqu because filters, order, limit and offset are all data-dependent.
type PostgresJokeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresJokeRepository constructs a repository backed by Postgres.
func NewPostgresJokeRepository(pg *db.Postgres, log *slog.Logger) *PostgresJokeRepository {
	return &PostgresJokeRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresJokeRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// CreateJoke inserts one record; id and created_at are storage-assigned.
func (r *PostgresJokeRepository) CreateJoke(ctx context.Context, text string, author *string) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (text, author)
		VALUES ($1, $2)
		RETURNING id, text, author, created_at
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, text, author).Scan(&j.ID, &j.Text, &j.Author, &j.CreatedAt); err != nil {
		return nil, mapStoreError(err)
	}
	return &j, nil
}

// GetJokeByID returns (nil, nil) when no record has the id.
func (r *PostgresJokeRepository) GetJokeByID(ctx context.Context, id int64) (*domain.Joke, error) {
	const q = `
		SELECT id, text, author, created_at
		FROM jokes
		WHERE id = $1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, id).Scan(&j.ID, &j.Text, &j.Author, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError(err)
	}
	return &j, nil
}

// ListJokes returns one ordered page of records matching the filter.
func (r *PostgresJokeRepository) ListJokes(ctx context.Context, q domain.JokeQuery) ([]domain.Joke, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableJokes).
		Select("id", "text", "author", "created_at").
		Where(filterExpressions(q.Filter)...)

	col := goqu.C(q.SortBy.Column())
	if q.Order == domain.SortAsc {
		ds = ds.Order(col.Asc())
	} else {
		ds = ds.Order(col.Desc())
	}

	sql, args, err := ds.
		Limit(uint(q.Limit)).
		Offset(uint(q.Offset)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, mapStoreError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapStoreError(err)
	}
	defer rows.Close()

	var jokes []domain.Joke
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.Text, &j.Author, &j.CreatedAt); err != nil {
			return nil, mapStoreError(err)
		}
		jokes = append(jokes, j)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err)
	}
	return jokes, nil
}

// CountJokes returns the total number of records matching the filter,
// unordered and unpaginated.
func (r *PostgresJokeRepository) CountJokes(ctx context.Context, f domain.JokeFilter) (int64, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableJokes).
		Select(goqu.COUNT("*")).
		Where(filterExpressions(f)...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, mapStoreError(err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, mapStoreError(err)
	}
	return total, nil
}

// filterExpressions builds substring-containment predicates. Both filters
// apply when both are set; a null author never matches an author filter.
func filterExpressions(f domain.JokeFilter) []goqu.Expression {
	var exprs []goqu.Expression
	if f.Author != "" {
		exprs = append(exprs, goqu.C("author").Like("%"+escapeLike(f.Author)+"%"))
	}
	if f.Search != "" {
		exprs = append(exprs, goqu.C("text").Like("%"+escapeLike(f.Search)+"%"))
	}
	return exprs
}

// escapeLike neutralizes LIKE wildcards in user input so filters stay
// plain substring matches.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
