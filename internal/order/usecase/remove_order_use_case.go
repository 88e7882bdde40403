package usecase

import (
	"context"

	"go.uber.org/zap"
)

type OrderRemover interface {
	SoftDelete(ctx context.Context, id uint) error
}

type RemoveOrderUseCase struct {
	orderRepo OrderRemover
	logger    *zap.Logger
}

func NewRemoveOrderUseCase(orderRepo OrderRemover, logger *zap.Logger) *RemoveOrderUseCase {
	return &RemoveOrderUseCase{orderRepo: orderRepo, logger: logger}
}

// Execute soft-deletes the order. Order lines are kept for history queries.
func (uc *RemoveOrderUseCase) Execute(ctx context.Context, orderID uint) error {
	if err := uc.orderRepo.SoftDelete(ctx, orderID); err != nil {
		return err
	}
	uc.logger.Info("order removed", zap.Uint("orderId", orderID))
	return nil
}
