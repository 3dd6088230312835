package resolver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	// Postgres driver, registered for database/sql.
	_ "github.com/lib/pq"
)

// PGSource reads config values from the service's Postgres config
// table. Values are stored as JSON, matching what the ingestion jobs
// write.
type PGSource struct {
	db *sql.DB
}

// OpenPG connects to the config store at the given connection URL.
func OpenPG(databaseURL string) (*PGSource, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	return &PGSource{db: db}, nil
}

// NewPGSource wraps an existing database handle.
func NewPGSource(db *sql.DB) *PGSource {
	return &PGSource{db: db}
}

// Get implements ConfigSource.
func (s *PGSource) Get(ctx context.Context, key string) (interface{}, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM config WHERE name = $1`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying config %q: %w", key, err)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false, fmt.Errorf("decoding config %q: %w", key, err)
	}
	return value, true, nil
}

// Close releases the underlying database handle.
func (s *PGSource) Close() error {
	return s.db.Close()
}
