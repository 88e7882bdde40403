package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type MySQLDfacRepository struct {
	db *sql.DB
}

func NewMySQLDfacRepository(db *sql.DB) *MySQLDfacRepository {
	return &MySQLDfacRepository{db: db}
}

// ExistsActive reports whether the dfac row exists and is not soft-deleted.
func (r *MySQLDfacRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	var found int
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM dfacs WHERE id = ? AND deleted_at IS NULL`, id,
	).Scan(&found)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking dfac existence: %w", err)
	}
	return true, nil
}
