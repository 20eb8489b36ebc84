package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DB wraps the sqlite handle backing the response cache.
type DB struct {
	handler  *sql.DB
	log      zerolog.Logger
	lock     sync.RWMutex
	squirrel sq.StatementBuilderType
}

// NewDB opens (creating if needed) the cache database under dir and brings
// its schema up to date.
func NewDB(dir string, log zerolog.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating cache directory %s", dir)
	}

	db := &DB{
		log:      log.With().Str("module", "database").Logger(),
		squirrel: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	dsn := filepath.Join(dir, "animethemes-cache.db") + "?_pragma=busy_timeout%3d1000"

	var err error
	db.handler, err = sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open cache database")
	}

	if _, err = db.handler.Exec(`PRAGMA journal_mode = wal;`); err != nil {
		return nil, errors.Wrap(err, "unable to enable WAL mode")
	}

	if err := db.migrate(); err != nil {
		db.handler.Close()
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}

// migrate handles schema creation and upgrades via PRAGMA user_version.
func (db *DB) migrate() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	var version int
	if err := db.handler.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return errors.Wrap(err, "failed to query schema version")
	}

	if version == len(migrations) {
		return nil
	} else if version > len(migrations) {
		return errors.Errorf("cache database schema version (%d) is newer than supported (%d)", version, len(migrations))
	}

	db.log.Info().Msgf("Upgrading cache database schema from version %v to version: %v", version, len(migrations))

	tx, err := db.handler.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if version == 0 {
		if _, err := tx.Exec(schema); err != nil {
			return errors.Wrap(err, "failed to initialize schema")
		}
	} else {
		for i := version; i < len(migrations); i++ {
			if migrations[i] == "" {
				continue
			}
			if _, err := tx.Exec(migrations[i]); err != nil {
				return errors.Wrapf(err, "failed to execute migration #%v", i)
			}
		}
	}

	if _, err = tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", len(migrations))); err != nil {
		return errors.Wrap(err, "failed to bump schema version")
	}

	return tx.Commit()
}

// Close closes the database connection.
func (db *DB) Close() error {
	if _, err := db.handler.Exec(`PRAGMA optimize;`); err != nil {
		return errors.Wrap(err, "query planner optimization")
	}

	return db.handler.Close()
}

// Ping checks that the database connection is alive.
func (db *DB) Ping() error {
	return db.handler.Ping()
}
