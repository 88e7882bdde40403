package usecase

import (
	"context"
	"fmt"

	"messhall/internal/domain"
	"messhall/internal/dto"
	apperrors "messhall/internal/errors"

	"go.uber.org/zap"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderLineRepository interface {
	FindByOrderID(ctx context.Context, orderID uint) (*domain.OrderLine, error)
}

type MealRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Meal, error)
}

type GetOrderUseCase struct {
	orderRepo     OrderRepository
	orderLineRepo OrderLineRepository
	mealRepo      MealRepository
	logger        *zap.Logger
}

func NewGetOrderUseCase(
	orderRepo OrderRepository,
	orderLineRepo OrderLineRepository,
	mealRepo MealRepository,
	logger *zap.Logger,
) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
		mealRepo:      mealRepo,
		logger:        logger,
	}
}

// Execute returns the order together with its meal view. An order that
// exists but has no line is upstream corruption: the creation path writes
// both in one transaction, so this surfaces as an integrity failure rather
// than an empty result.
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID uint) (*dto.OrderWithMeal, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	line, err := uc.orderLineRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			uc.logger.Error("order has no order line", zap.Uint("orderId", orderID))
			return nil, apperrors.NewIntegrityError(fmt.Sprintf("order %d has no order line", orderID))
		}
		return nil, err
	}

	meal, err := uc.mealRepo.FindByID(ctx, line.MealID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			uc.logger.Error("order line references missing meal",
				zap.Uint("orderId", orderID), zap.Int("mealId", line.MealID))
			return nil, apperrors.NewIntegrityError(
				fmt.Sprintf("order %d references missing meal %d", orderID, line.MealID))
		}
		return nil, err
	}

	return &dto.OrderWithMeal{
		Order: dto.NewOrderView(order),
		Meal:  dto.NewMealView(meal),
	}, nil
}
