package dto

type UpdateMealRequest struct {
	MealName    *string  `json:"mealName"`
	Description *string  `json:"description"`
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	ImgPic      *string  `json:"imgPic"`
}
