package usecase

import (
	"context"
	"time"

	"messhall/internal/domain"
	"messhall/internal/dto"

	"go.uber.org/zap"
)

type OrderMutator interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	UpdateFields(ctx context.Context, id uint, changes map[string]any) (*domain.Order, error)
}

type UpdateOrderStatusUseCase struct {
	orderRepo OrderMutator
	logger    *zap.Logger
	now       func() time.Time
}

func NewUpdateOrderStatusUseCase(orderRepo OrderMutator, logger *zap.Logger) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute applies a sparse status update. The current row is loaded first so
// the transition can be validated against the actual state; the field
// mutation itself goes through the shared partial-update compiler in the
// repository. Canceling also stamps canceled_at.
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID uint, req dto.UpdateOrderStatusRequest) (*dto.OrderView, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	change := domain.StatusChange{
		ReadyTime:    req.ReadyTime,
		PickedUpTime: req.PickedUpTime,
		Canceled:     req.Canceled,
		Favorite:     req.Favorite,
		Comments:     req.Comments,
		ToGo:         req.ToGo,
	}
	if err := domain.ValidateStatusChange(order, change); err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.ReadyTime != nil {
		changes["readyTime"] = *req.ReadyTime
	}
	if req.PickedUpTime != nil {
		changes["pickedUpTime"] = *req.PickedUpTime
	}
	if req.Canceled != nil {
		changes["canceled"] = *req.Canceled
		if *req.Canceled {
			changes["canceledAt"] = uc.now()
		}
	}
	if req.Favorite != nil {
		changes["favorite"] = *req.Favorite
	}
	if req.Comments != nil {
		changes["comments"] = *req.Comments
	}
	if req.ToGo != nil {
		changes["toGo"] = *req.ToGo
	}

	// An empty change set is rejected by the compiler inside UpdateFields.
	updated, err := uc.orderRepo.UpdateFields(ctx, orderID, changes)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("status", string(updated.Status())),
	)

	view := dto.NewOrderView(updated)
	return &view, nil
}
