package domain

import "time"

type Order struct {
	ID             uint
	CustomerID     int
	DfacID         int
	Comments       *string
	ToGo           bool
	OrderTimestamp time.Time
	ReadyForPickup *time.Time
	PickedUp       *time.Time
	Canceled       bool
	CanceledAt     *time.Time
	Favorite       bool
	DeletedAt      *time.Time
}

type OrderLine struct {
	ID                  uint
	OrderID             uint
	MealID              int
	Quantity            int
	SpecialInstructions *string
}

type OrderStatus string

const (
	OrderStatusCreated        OrderStatus = "CREATED"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusPickedUp       OrderStatus = "PICKED_UP"
	OrderStatusCanceled       OrderStatus = "CANCELED"
)

// Status derives the fulfillment state from the row's timestamps and flags.
// Exactly one state holds at any time; canceled wins over the pickup
// timestamps so a canceled-after-ready order reads as canceled.
func (o Order) Status() OrderStatus {
	switch {
	case o.Canceled:
		return OrderStatusCanceled
	case o.PickedUp != nil:
		return OrderStatusPickedUp
	case o.ReadyForPickup != nil:
		return OrderStatusReadyForPickup
	default:
		return OrderStatusCreated
	}
}

// Terminal reports whether the status admits no further lifecycle change.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPickedUp || s == OrderStatusCanceled
}
