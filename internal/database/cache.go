package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/varoOP/go-animethemes/internal/domain"
)

// CacheRepo implements domain.CacheRepo on top of the sqlite database.
type CacheRepo struct {
	log zerolog.Logger
	db  *DB
}

// NewCacheRepo creates a new response cache repository.
func NewCacheRepo(log zerolog.Logger, db *DB) domain.CacheRepo {
	return &CacheRepo{
		log: log.With().Str("repo", "cache").Logger(),
		db:  db,
	}
}

// Get returns the cached response for url, or nil when there is none.
// A hit refreshes the entry's last_used column.
func (r *CacheRepo) Get(ctx context.Context, url string) (*domain.CachedResponse, error) {
	queryBuilder := r.db.squirrel.
		Select("url", "status", "body", "fetched_at").
		From("http_cache").
		Where(sq.Eq{"url": url})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Get")

	res := &domain.CachedResponse{}
	var fetchedAt string
	row := r.db.handler.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&res.URL, &res.Status, &res.Body, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error scanning row")
	}

	res.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing fetched_at")
	}

	if err := r.touch(ctx, url); err != nil {
		r.log.Warn().Err(err).Str("url", url).Msg("failed to update last_used")
	}

	return res, nil
}

// Store inserts or replaces the cached response for its URL.
func (r *CacheRepo) Store(ctx context.Context, res *domain.CachedResponse) error {
	now := time.Now().Format(time.RFC3339)
	fetchedAt := res.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	queryBuilder := r.db.squirrel.
		Replace("http_cache").
		Columns("url", "status", "body", "fetched_at", "last_used").
		Values(res.URL, res.Status, res.Body, fetchedAt.Format(time.RFC3339), now)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Msg("Store")

	if _, err := r.db.handler.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing query")
	}

	return nil
}

// Prune deletes entries fetched before cutoff.
func (r *CacheRepo) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	queryBuilder := r.db.squirrel.
		Delete("http_cache").
		Where(sq.Lt{"fetched_at": cutoff.Format(time.RFC3339)})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Prune")

	result, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing query")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "error reading affected rows")
	}

	return int(deleted), nil
}

func (r *CacheRepo) touch(ctx context.Context, url string) error {
	queryBuilder := r.db.squirrel.
		Update("http_cache").
		Set("last_used", time.Now().Format(time.RFC3339)).
		Where(sq.Eq{"url": url})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	_, err = r.db.handler.ExecContext(ctx, query, args...)
	return errors.Wrap(err, "error executing query")
}
