package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "messhall/internal/errors"
	mealrepo "messhall/internal/meal/repository"
	orderrepo "messhall/internal/order/repository"
	"messhall/internal/testutil"
)

// These tests exercise the engine against a real MySQL instance because the
// property under test is transactional atomicity; they skip when the test
// database is unavailable.

func TestCreateOrder_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	svc := NewOrderService(
		db,
		orderrepo.NewMySQLOrderRepository(db),
		orderrepo.NewMySQLOrderLineRepository(db),
		mealrepo.NewMySQLMealRepository(db),
		zap.NewNop(),
		5*time.Second,
	)

	customerID := testutil.SeedCustomer(t, db, false)
	dfacID := testutil.SeedDfac(t, db, false)
	mealID := testutil.SeedMeal(t, db, dfacID, 8.50)

	instructions := "no onions"
	result, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		CustomerID:          customerID,
		DfacID:              dfacID,
		MealID:              mealID,
		ToGo:                true,
		Quantity:            2,
		SpecialInstructions: &instructions,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Order.OrderID == 0 {
		t.Errorf("expected generated order id")
	}
	if result.OrderLine.OrderID != result.Order.OrderID {
		t.Errorf("order and line ids disagree: %d vs %d",
			result.Order.OrderID, result.OrderLine.OrderID)
	}
	if result.Meal.MealID != mealID {
		t.Errorf("expected mealID %d, got %d", mealID, result.Meal.MealID)
	}
	if result.OrderLine.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", result.OrderLine.Quantity)
	}

	// The trigger snapshots the meal price at insertion.
	var priceAtOrder float64
	err = db.QueryRow(`SELECT price_at_order FROM order_meals WHERE order_id = ?`,
		result.Order.OrderID).Scan(&priceAtOrder)
	if err != nil {
		t.Fatalf("reading price snapshot: %v", err)
	}
	if priceAtOrder != 8.50 {
		t.Errorf("expected price snapshot 8.50, got %v", priceAtOrder)
	}

	// A later meal price change must not touch the snapshot.
	if _, err := db.Exec(`UPDATE meals SET price = 12.00 WHERE id = ?`, mealID); err != nil {
		t.Fatalf("updating meal price: %v", err)
	}
	err = db.QueryRow(`SELECT price_at_order FROM order_meals WHERE order_id = ?`,
		result.Order.OrderID).Scan(&priceAtOrder)
	if err != nil {
		t.Fatalf("re-reading price snapshot: %v", err)
	}
	if priceAtOrder != 8.50 {
		t.Errorf("price snapshot was recomputed: got %v", priceAtOrder)
	}
}

func TestCreateOrder_MissingMealRollsBackOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	svc := NewOrderService(
		db,
		orderrepo.NewMySQLOrderRepository(db),
		orderrepo.NewMySQLOrderLineRepository(db),
		mealrepo.NewMySQLMealRepository(db),
		zap.NewNop(),
		5*time.Second,
	)

	customerID := testutil.SeedCustomer(t, db, false)
	dfacID := testutil.SeedDfac(t, db, false)

	_, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		CustomerID: customerID,
		DfacID:     dfacID,
		MealID:     999999,
		ToGo:       true,
		Quantity:   1,
	})

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}

	// The order insert from the failed transaction must not be visible.
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM orders WHERE customer_id = ?`,
		customerID).Scan(&count); err != nil {
		t.Fatalf("counting orders: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no orders after rollback, found %d", count)
	}
}

func TestCreateOrder_CanceledContextRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	svc := NewOrderService(
		db,
		orderrepo.NewMySQLOrderRepository(db),
		orderrepo.NewMySQLOrderLineRepository(db),
		mealrepo.NewMySQLMealRepository(db),
		zap.NewNop(),
		5*time.Second,
	)

	customerID := testutil.SeedCustomer(t, db, false)
	dfacID := testutil.SeedDfac(t, db, false)
	mealID := testutil.SeedMeal(t, db, dfacID, 8.50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateOrder(ctx, CreateOrderParams{
		CustomerID: customerID,
		DfacID:     dfacID,
		MealID:     mealID,
		ToGo:       true,
		Quantity:   1,
	})

	if err == nil {
		t.Fatalf("expected error from canceled context, got nil")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM orders WHERE customer_id = ?`,
		customerID).Scan(&count); err != nil {
		t.Fatalf("counting orders: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no orders after canceled context, found %d", count)
	}
}
