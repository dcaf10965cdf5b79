package postgre

import (
	"database/sql"
	"fmt"

	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/pkg/log"

	_ "github.com/lib/pq"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed task store.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("dailytask/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open connects to PostgreSQL through lib/pq and checks the connection.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dailytask/repository/postgre.%s", method)
}
