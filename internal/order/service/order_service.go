package service

import (
	"context"
	"database/sql"
	"time"

	"messhall/internal/domain"
	"messhall/internal/dto"
	apperrors "messhall/internal/errors"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, customerID, dfacID int, comments *string, toGo bool) (*domain.Order, error)
}

type OrderLineRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, line domain.OrderLine) (*domain.OrderLine, error)
}

type MealRepository interface {
	FindByIDTx(ctx context.Context, tx *sql.Tx, id int) (*domain.Meal, error)
}

type CreateOrderParams struct {
	CustomerID          int
	DfacID              int
	MealID              int
	Comments            *string
	ToGo                bool
	Quantity            int
	SpecialInstructions *string
}

// OrderService is the transaction engine: it owns the atomic creation of an
// order and its order line. Reference validation happens upstream in the use
// case; everything here runs inside one database transaction.
type OrderService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderLineRepo OrderLineRepository
	mealRepo      MealRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderLineRepo OrderLineRepository,
	mealRepo MealRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
		mealRepo:      mealRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

// CreateOrder inserts the order, resolves the meal, and inserts the order
// line, all in a single transaction. A missing meal rolls the order insert
// back; no path leaves an order without its line. The meal is read inside
// the transaction so the price the caller sees matches the snapshot the
// insert trigger takes.
func (s *OrderService) CreateOrder(ctx context.Context, params CreateOrderParams) (*dto.MealOrdered, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback on every exit path. MySQL ignores it after a commit.
	defer tx.Rollback()

	order, err := s.orderRepo.Insert(txCtx, tx, params.CustomerID, params.DfacID, params.Comments, params.ToGo)
	if err != nil {
		s.logger.Error("failed to insert order", zap.Int("customerId", params.CustomerID), zap.Error(err))
		return nil, err
	}

	meal, err := s.mealRepo.FindByIDTx(txCtx, tx, params.MealID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			s.logger.Warn("meal not found, rolling back order",
				zap.Uint("orderId", order.ID), zap.Int("mealId", params.MealID))
			return nil, err
		}
		s.logger.Error("failed to look up meal", zap.Int("mealId", params.MealID), zap.Error(err))
		return nil, err
	}

	line, err := s.orderLineRepo.Insert(txCtx, tx, domain.OrderLine{
		OrderID:             order.ID,
		MealID:              meal.ID,
		Quantity:            params.Quantity,
		SpecialInstructions: params.SpecialInstructions,
	})
	if err != nil {
		s.logger.Error("failed to insert order line", zap.Uint("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order creation", zap.Uint("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", order.ID),
		zap.Int("customerId", params.CustomerID),
		zap.Int("mealId", meal.ID),
		zap.Int("quantity", params.Quantity),
	)

	return &dto.MealOrdered{
		Meal:      dto.NewMealView(meal),
		Order:     dto.NewOrderView(order),
		OrderLine: dto.NewOrderLineView(line),
	}, nil
}
