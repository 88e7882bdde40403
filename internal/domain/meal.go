package domain

import "time"

type Meal struct {
	ID          int
	DfacID      int
	MealName    string
	Description string
	Type        string
	Price       float64
	ImgPic      *string
	Likes       int
	UpdatedAt   time.Time
}
