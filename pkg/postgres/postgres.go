package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// Connect opens a Postgres connection and verifies it with a ping.
func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
