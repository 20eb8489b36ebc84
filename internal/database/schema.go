package database

const schema = `
CREATE TABLE http_cache (
	url TEXT PRIMARY KEY,
	status INTEGER NOT NULL,
	body BLOB NOT NULL,
	fetched_at TIMESTAMP NOT NULL,
	last_used TIMESTAMP NOT NULL
);

CREATE INDEX idx_http_cache_fetched_at ON http_cache(fetched_at);
CREATE INDEX idx_http_cache_last_used ON http_cache(last_used);
`

// migrations contains incremental schema changes, applied in order based on
// the current user_version. migrations[0] is empty because version 0 is the
// base schema.
var migrations = []string{
	"",
}
