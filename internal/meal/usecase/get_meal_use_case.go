package usecase

import (
	"context"

	"messhall/internal/dto"

	"go.uber.org/zap"
)

type GetMealUseCase struct {
	mealRepo MealRepository
	logger   *zap.Logger
}

func NewGetMealUseCase(mealRepo MealRepository, logger *zap.Logger) *GetMealUseCase {
	return &GetMealUseCase{mealRepo: mealRepo, logger: logger}
}

func (uc *GetMealUseCase) Execute(ctx context.Context, mealID int) (*dto.MealView, error) {
	meal, err := uc.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		return nil, err
	}

	view := dto.NewMealView(meal)
	return &view, nil
}
