package usecase

import (
	"context"

	"messhall/internal/domain"
	"messhall/internal/dto"
	apperrors "messhall/internal/errors"

	"go.uber.org/zap"
)

type MealRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Meal, error)
	UpdateFields(ctx context.Context, id int, changes map[string]any) (*domain.Meal, error)
}

type UpdateMealUseCase struct {
	mealRepo MealRepository
	logger   *zap.Logger
}

func NewUpdateMealUseCase(mealRepo MealRepository, logger *zap.Logger) *UpdateMealUseCase {
	return &UpdateMealUseCase{mealRepo: mealRepo, logger: logger}
}

// Execute applies a sparse meal update through the shared partial-update
// compiler. Changing the price affects future order snapshots only; lines
// already written keep the price captured at their insertion.
func (uc *UpdateMealUseCase) Execute(ctx context.Context, mealID int, req dto.UpdateMealRequest) (*dto.MealView, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	changes := map[string]any{}
	if req.MealName != nil {
		changes["mealName"] = *req.MealName
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Type != nil {
		changes["type"] = *req.Type
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.ImgPic != nil {
		changes["imgPic"] = *req.ImgPic
	}

	meal, err := uc.mealRepo.UpdateFields(ctx, mealID, changes)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("meal updated", zap.Int("mealId", mealID))

	view := dto.NewMealView(meal)
	return &view, nil
}
