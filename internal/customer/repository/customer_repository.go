package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

// ExistsActive reports whether the customer row exists and is not
// soft-deleted. Soft-deleted customers must not receive new orders.
func (r *MySQLCustomerRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	var found int
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM customers WHERE id = ? AND deleted_at IS NULL`, id,
	).Scan(&found)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking customer existence: %w", err)
	}
	return true, nil
}
