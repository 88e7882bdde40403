package repository

import (
	"context"
	"database/sql"
	"fmt"

	"messhall/internal/domain"
	apperrors "messhall/internal/errors"
	"messhall/internal/sqlutil"
)

var mealFieldMap = map[string]string{
	"mealName":    "meal_name",
	"description": "description",
	"type":        "type",
	"price":       "price",
	"imgPic":      "img_pic",
}

const mealColumns = `id, dfac_id, meal_name, description, type, price, img_pic, likes, updated_at`

type MySQLMealRepository struct {
	db *sql.DB
}

func NewMySQLMealRepository(db *sql.DB) *MySQLMealRepository {
	return &MySQLMealRepository{db: db}
}

func scanMeal(row *sql.Row) (*domain.Meal, error) {
	var meal domain.Meal
	err := row.Scan(
		&meal.ID, &meal.DfacID, &meal.MealName, &meal.Description,
		&meal.Type, &meal.Price, &meal.ImgPic, &meal.Likes, &meal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *MySQLMealRepository) FindByID(ctx context.Context, id int) (*domain.Meal, error) {
	meal, err := scanMeal(r.db.QueryRowContext(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("meal not found: %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying meal by id: %w", err)
	}
	return meal, nil
}

// FindByIDTx reads the meal inside the caller's transaction, so the price the
// caller observes is the price the insert trigger snapshots.
func (r *MySQLMealRepository) FindByIDTx(ctx context.Context, tx *sql.Tx, id int) (*domain.Meal, error) {
	meal, err := scanMeal(tx.QueryRowContext(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("meal not found: %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying meal by id: %w", err)
	}
	return meal, nil
}

// UpdateFields applies a sparse change set compiled against the meal
// allow-list and returns the updated row.
func (r *MySQLMealRepository) UpdateFields(ctx context.Context, id int, changes map[string]any) (*domain.Meal, error) {
	setClause, args, err := sqlutil.CompileUpdate(changes, mealFieldMap)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE meals SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, setClause)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating meal fields: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// updated_at always changes, so zero rows means the id did not match.
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("meal not found: %d", id))
	}

	return r.FindByID(ctx, id)
}
