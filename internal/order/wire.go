package order

import (
	"database/sql"

	"messhall/internal/config"
	customerrepo "messhall/internal/customer/repository"
	dfacrepo "messhall/internal/dfac/repository"
	mealrepo "messhall/internal/meal/repository"
	"messhall/internal/order/controller"
	orderrepo "messhall/internal/order/repository"
	"messhall/internal/order/service"
	"messhall/internal/order/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderLineRepo := orderrepo.NewMySQLOrderLineRepository(db)
	mealRepo := mealrepo.NewMySQLMealRepository(db)
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)
	dfacRepo := dfacrepo.NewMySQLDfacRepository(db)

	orderSvc := service.NewOrderService(
		db,
		orderRepo,
		orderLineRepo,
		mealRepo,
		logger,
		cfg.Order.TxTimeout,
	)

	createUC := usecase.NewCreateOrderUseCase(
		customerRepo,
		dfacRepo,
		orderSvc,
		logger,
		cfg.Order.WindowEnforced,
	)
	getUC := usecase.NewGetOrderUseCase(orderRepo, orderLineRepo, mealRepo, logger)
	updateUC := usecase.NewUpdateOrderStatusUseCase(orderRepo, logger)
	removeUC := usecase.NewRemoveOrderUseCase(orderRepo, logger)

	return controller.NewOrderController(createUC, getUC, updateUC, removeUC, logger)
}
