package meal

import (
	"database/sql"

	"messhall/internal/meal/controller"
	"messhall/internal/meal/repository"
	"messhall/internal/meal/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.MealController {
	repo := repository.NewMySQLMealRepository(db)
	getUC := usecase.NewGetMealUseCase(repo, logger)
	updateUC := usecase.NewUpdateMealUseCase(repo, logger)
	return controller.NewMealController(getUC, updateUC, logger)
}
