package repository

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound means a lookup by key matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means an insert or update hit a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

// translate maps driver errors onto the repository sentinels so that
// handlers never see sqlite details.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrDuplicate
	}
	return err
}
