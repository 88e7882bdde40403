package repository

import (
	"context"
	"database/sql"
	"fmt"

	"messhall/internal/domain"
	apperrors "messhall/internal/errors"
	"messhall/internal/sqlutil"
)

// orderFieldMap is the allow-list for partial order updates: logical field
// name to storage column. Anything outside this map is rejected before it can
// reach the statement.
var orderFieldMap = map[string]string{
	"readyTime":    "ready_for_pickup",
	"pickedUpTime": "picked_up",
	"canceled":     "canceled",
	"canceledAt":   "canceled_at",
	"favorite":     "favorite",
	"comments":     "comments",
	"toGo":         "to_go",
}

const orderColumns = `id, customer_id, dfac_id, comments, to_go, order_timestamp,
	       ready_for_pickup, picked_up, canceled, canceled_at, favorite, deleted_at`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.CustomerID, &order.DfacID, &order.Comments, &order.ToGo,
		&order.OrderTimestamp, &order.ReadyForPickup, &order.PickedUp,
		&order.Canceled, &order.CanceledAt, &order.Favorite, &order.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Insert creates the order row inside the caller's transaction and returns
// the stored row, including the generated id and order_timestamp.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, customerID, dfacID int, comments *string, toGo bool) (*domain.Order, error) {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO orders (customer_id, dfac_id, comments, to_go) VALUES (?, ?, ?, ?)`,
		customerID, dfacID, comments, toGo,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	order, err := scanOrder(tx.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, lastInsertID))
	if err != nil {
		return nil, fmt.Errorf("reading back inserted order: %w", err)
	}

	return order, nil
}

// FindByID returns an active order; soft-deleted rows read as not found.
func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ? AND deleted_at IS NULL`, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

// SoftDelete stamps deleted_at. The row and its order lines stay behind for
// history queries.
func (r *MySQLOrderRepository) SoftDelete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft-deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

// UpdateFields applies a sparse change set compiled against the order
// allow-list and returns the updated row. Callers are expected to have
// verified the order exists; an identical-value update is a legitimate no-op
// here, so affected-row counts are not inspected.
func (r *MySQLOrderRepository) UpdateFields(ctx context.Context, id uint, changes map[string]any) (*domain.Order, error) {
	setClause, args, err := sqlutil.CompileUpdate(changes, orderFieldMap)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE orders SET %s WHERE id = ? AND deleted_at IS NULL`, setClause)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("updating order fields: %w", err)
	}

	return r.FindByID(ctx, id)
}
