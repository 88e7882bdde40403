package dto

import (
	"time"

	"messhall/internal/domain"
)

type CreateOrderRequest struct {
	CustomerID          int     `json:"customerID"`
	DfacID              int     `json:"dfacID"`
	MealID              int     `json:"mealID"`
	Comments            *string `json:"comments"`
	ToGo                *bool   `json:"toGo"`
	Quantity            *int    `json:"quantity"`
	SpecialInstructions *string `json:"specialInstructions"`
}

type UpdateOrderStatusRequest struct {
	ReadyTime    *time.Time `json:"readyTime"`
	PickedUpTime *time.Time `json:"pickedUpTime"`
	Canceled     *bool      `json:"canceled"`
	Favorite     *bool      `json:"favorite"`
	Comments     *string    `json:"comments"`
	ToGo         *bool      `json:"toGo"`
}

type OrderView struct {
	OrderID        uint       `json:"orderID"`
	DfacID         int        `json:"dfacID"`
	Comments       *string    `json:"comments"`
	ToGo           bool       `json:"toGo"`
	OrderTimestamp time.Time  `json:"orderTimestamp"`
	ReadyTime      *time.Time `json:"readyTime"`
	PickedUpTime   *time.Time `json:"pickedUpTime"`
	Canceled       bool       `json:"canceled"`
	Favorite       bool       `json:"favorite"`
	Status         string     `json:"status"`
}

type OrderLineView struct {
	OrderLineID         uint    `json:"orderLineID"`
	OrderID             uint    `json:"orderID"`
	MealID              int     `json:"mealID"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"specialInstructions"`
}

type MealView struct {
	MealID      int     `json:"mealID"`
	DfacID      int     `json:"dfacID"`
	MealName    string  `json:"mealName"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	ImgPic      *string `json:"imgPic"`
	Likes       int     `json:"likes"`
}

// MealOrdered is the composed result of a successful order creation.
type MealOrdered struct {
	Meal      MealView      `json:"meal"`
	Order     OrderView     `json:"order"`
	OrderLine OrderLineView `json:"orderMealJoin"`
}

// OrderWithMeal is the read-path composition for a single order.
type OrderWithMeal struct {
	Order OrderView `json:"order"`
	Meal  MealView  `json:"meal"`
}

func NewOrderView(o *domain.Order) OrderView {
	return OrderView{
		OrderID:        o.ID,
		DfacID:         o.DfacID,
		Comments:       o.Comments,
		ToGo:           o.ToGo,
		OrderTimestamp: o.OrderTimestamp,
		ReadyTime:      o.ReadyForPickup,
		PickedUpTime:   o.PickedUp,
		Canceled:       o.Canceled,
		Favorite:       o.Favorite,
		Status:         string(o.Status()),
	}
}

func NewOrderLineView(l *domain.OrderLine) OrderLineView {
	return OrderLineView{
		OrderLineID:         l.ID,
		OrderID:             l.OrderID,
		MealID:              l.MealID,
		Quantity:            l.Quantity,
		SpecialInstructions: l.SpecialInstructions,
	}
}

func NewMealView(m *domain.Meal) MealView {
	return MealView{
		MealID:      m.ID,
		DfacID:      m.DfacID,
		MealName:    m.MealName,
		Description: m.Description,
		Type:        m.Type,
		Price:       m.Price,
		ImgPic:      m.ImgPic,
		Likes:       m.Likes,
	}
}
