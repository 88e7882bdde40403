package usecase

import (
	"context"
	"fmt"
	"time"

	"messhall/internal/domain"
	"messhall/internal/dto"
	apperrors "messhall/internal/errors"
	"messhall/internal/order/service"

	"go.uber.org/zap"
)

type CustomerRepository interface {
	ExistsActive(ctx context.Context, id int) (bool, error)
}

type DfacRepository interface {
	ExistsActive(ctx context.Context, id int) (bool, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, params service.CreateOrderParams) (*dto.MealOrdered, error)
}

type CreateOrderUseCase struct {
	customerRepo   CustomerRepository
	dfacRepo       DfacRepository
	orderSvc       OrderCreator
	logger         *zap.Logger
	windowEnforced bool
	now            func() time.Time
}

func NewCreateOrderUseCase(
	customerRepo CustomerRepository,
	dfacRepo DfacRepository,
	orderSvc OrderCreator,
	logger *zap.Logger,
	windowEnforced bool,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		customerRepo:   customerRepo,
		dfacRepo:       dfacRepo,
		orderSvc:       orderSvc,
		logger:         logger,
		windowEnforced: windowEnforced,
		now:            time.Now,
	}
}

// Execute runs the pre-transaction checks (quantity, admission window,
// customer and dfac references) and hands off to the transaction engine.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.MealOrdered, error) {
	toGo := true
	if req.ToGo != nil {
		toGo = *req.ToGo
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if quantity <= 0 {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	if uc.windowEnforced && !domain.IsWithinOrderWindow(uc.now()) {
		uc.logger.Info("order rejected outside admission window",
			zap.Int("customerId", req.CustomerID), zap.Int("dfacId", req.DfacID))
		return nil, apperrors.NewConflictError("ordering is closed at the current time")
	}

	customerOK, err := uc.customerRepo.ExistsActive(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customerOK {
		return nil, apperrors.NewBadReferenceError(fmt.Sprintf("bad customerID: %d", req.CustomerID))
	}

	dfacOK, err := uc.dfacRepo.ExistsActive(ctx, req.DfacID)
	if err != nil {
		return nil, err
	}
	if !dfacOK {
		return nil, apperrors.NewBadReferenceError(fmt.Sprintf("bad dfacID: %d", req.DfacID))
	}

	return uc.orderSvc.CreateOrder(ctx, service.CreateOrderParams{
		CustomerID:          req.CustomerID,
		DfacID:              req.DfacID,
		MealID:              req.MealID,
		Comments:            req.Comments,
		ToGo:                toGo,
		Quantity:            quantity,
		SpecialInstructions: req.SpecialInstructions,
	})
}
