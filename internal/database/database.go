package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/quizforge/backend/internal/config"
)

// Connect opens a Postgres pool for cfg.URL and verifies it with a ping.
func Connect(cfg config.DB) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	return db, nil
}
