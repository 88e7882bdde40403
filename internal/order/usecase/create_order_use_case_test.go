package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"messhall/internal/dto"
	apperrors "messhall/internal/errors"
	"messhall/internal/order/service"
)

// Tuesday inside the 06:30-08:30 window / Tuesday after all windows.
var (
	tuesdayOpen   = time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	tuesdayClosed = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// Mock implementations

type mockCustomerRepository struct {
	ExistsActiveFunc func(ctx context.Context, id int) (bool, error)
}

func (m *mockCustomerRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return m.ExistsActiveFunc(ctx, id)
}

type mockDfacRepository struct {
	ExistsActiveFunc func(ctx context.Context, id int) (bool, error)
}

func (m *mockDfacRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	return m.ExistsActiveFunc(ctx, id)
}

type mockOrderCreator struct {
	CreateOrderFunc func(ctx context.Context, params service.CreateOrderParams) (*dto.MealOrdered, error)
}

func (m *mockOrderCreator) CreateOrder(ctx context.Context, params service.CreateOrderParams) (*dto.MealOrdered, error) {
	return m.CreateOrderFunc(ctx, params)
}

func newTestCreateOrderUseCase(
	customerRepo CustomerRepository,
	dfacRepo DfacRepository,
	orderSvc OrderCreator,
	windowEnforced bool,
	now time.Time,
) *CreateOrderUseCase {
	uc := NewCreateOrderUseCase(customerRepo, dfacRepo, orderSvc, zap.NewNop(), windowEnforced)
	uc.now = func() time.Time { return now }
	return uc
}

func activeRepoMocks() (*mockCustomerRepository, *mockDfacRepository) {
	customers := &mockCustomerRepository{
		ExistsActiveFunc: func(ctx context.Context, id int) (bool, error) { return true, nil },
	}
	dfacs := &mockDfacRepository{
		ExistsActiveFunc: func(ctx context.Context, id int) (bool, error) { return true, nil },
	}
	return customers, dfacs
}

// Tests

func TestCreateOrder_NonPositiveQuantity(t *testing.T) {
	customers, dfacs := activeRepoMocks()
	svc := &mockOrderCreator{}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, true, tuesdayOpen)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 1, DfacID: 1, MealID: 1, Quantity: intPtr(0),
	})

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateOrder_OutsideWindowRejected(t *testing.T) {
	customers, dfacs := activeRepoMocks()
	svc := &mockOrderCreator{}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, true, tuesdayClosed)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 1, DfacID: 1, MealID: 1,
	})

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %T", err)
	}
}

func TestCreateOrder_WindowBypassedByConfig(t *testing.T) {
	customers, dfacs := activeRepoMocks()
	svc := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, params service.CreateOrderParams) (*dto.MealOrdered, error) {
			return &dto.MealOrdered{}, nil
		},
	}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, false, tuesdayClosed)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 1, DfacID: 1, MealID: 1,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCreateOrder_BadCustomerReference(t *testing.T) {
	customers := &mockCustomerRepository{
		ExistsActiveFunc: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	dfacs := &mockDfacRepository{
		ExistsActiveFunc: func(ctx context.Context, id int) (bool, error) {
			t.Errorf("dfac check should not run after customer check fails")
			return true, nil
		},
	}
	svc := &mockOrderCreator{}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, true, tuesdayOpen)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 7, DfacID: 1, MealID: 1,
	})

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsBadReferenceError(err); !ok {
		t.Errorf("expected BadReferenceError, got %T", err)
	}
}

func TestCreateOrder_BadDfacReference(t *testing.T) {
	customers := &mockCustomerRepository{
		ExistsActiveFunc: func(ctx context.Context, id int) (bool, error) { return true, nil },
	}
	dfacs := &mockDfacRepository{
		ExistsActiveFunc: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	svc := &mockOrderCreator{}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, true, tuesdayOpen)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 1, DfacID: 9, MealID: 1,
	})

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsBadReferenceError(err); !ok {
		t.Errorf("expected BadReferenceError, got %T", err)
	}
}

func TestCreateOrder_DefaultsAndPassthrough(t *testing.T) {
	customers, dfacs := activeRepoMocks()

	var captured service.CreateOrderParams
	svc := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, params service.CreateOrderParams) (*dto.MealOrdered, error) {
			captured = params
			return &dto.MealOrdered{}, nil
		},
	}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, true, tuesdayOpen)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 3, DfacID: 4, MealID: 5,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", captured.Quantity)
	}
	if !captured.ToGo {
		t.Errorf("expected default toGo true")
	}
	if captured.CustomerID != 3 || captured.DfacID != 4 || captured.MealID != 5 {
		t.Errorf("unexpected params: %+v", captured)
	}
}

func TestCreateOrder_ExplicitToGoFalse(t *testing.T) {
	customers, dfacs := activeRepoMocks()

	var captured service.CreateOrderParams
	svc := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, params service.CreateOrderParams) (*dto.MealOrdered, error) {
			captured = params
			return &dto.MealOrdered{}, nil
		},
	}

	uc := newTestCreateOrderUseCase(customers, dfacs, svc, true, tuesdayOpen)

	_, err := uc.Execute(context.Background(), dto.CreateOrderRequest{
		CustomerID: 3, DfacID: 4, MealID: 5, ToGo: boolPtr(false), Quantity: intPtr(2),
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.ToGo {
		t.Errorf("expected toGo false")
	}
	if captured.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", captured.Quantity)
	}
}
