package repository

import (
	"context"
	"database/sql"
	"fmt"

	"messhall/internal/domain"
	apperrors "messhall/internal/errors"
)

type MySQLOrderLineRepository struct {
	db *sql.DB
}

func NewMySQLOrderLineRepository(db *sql.DB) *MySQLOrderLineRepository {
	return &MySQLOrderLineRepository{db: db}
}

// Insert creates the order-meal line inside the caller's transaction. The
// price_at_order column is populated by a database trigger from the meal's
// current price; the engine never writes or recomputes it.
func (r *MySQLOrderLineRepository) Insert(ctx context.Context, tx *sql.Tx, line domain.OrderLine) (*domain.OrderLine, error) {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO order_meals (order_id, meal_id, quantity, special_instructions)
		 VALUES (?, ?, ?, ?)`,
		line.OrderID, line.MealID, line.Quantity, line.SpecialInstructions,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order line: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	line.ID = uint(lastInsertID)
	return &line, nil
}

func (r *MySQLOrderLineRepository) FindByOrderID(ctx context.Context, orderID uint) (*domain.OrderLine, error) {
	var line domain.OrderLine
	err := r.db.QueryRowContext(ctx,
		`SELECT id, order_id, meal_id, quantity, special_instructions
		 FROM order_meals
		 WHERE order_id = ?`,
		orderID,
	).Scan(&line.ID, &line.OrderID, &line.MealID, &line.Quantity, &line.SpecialInstructions)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no order line for order %d", orderID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order line: %w", err)
	}

	return &line, nil
}
