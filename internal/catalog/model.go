package catalog

import "fooodimp-be/internal/money"

// FoodRecord is a catalog table item as stored.
type FoodRecord struct {
	FoodID    string       `dynamodbav:"FoodID" json:"FoodID"`
	Title     string       `dynamodbav:"title" json:"title"`
	Quantity  int          `dynamodbav:"quantity" json:"quantity"`
	Rate      money.Amount `dynamodbav:"rate" json:"rate"`
	URL       string       `dynamodbav:"url" json:"url"`
	TitleID   string       `dynamodbav:"titleId" json:"titleId"`
	TitleName string       `dynamodbav:"titlename" json:"titlename"`
}

// FoodItem is the listing projection of a FoodRecord.
type FoodItem struct {
	FoodID   string  `json:"foodID"`
	FoodName string  `json:"food_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
	TitleID  string  `json:"titleId"`
}

// SubmitFoodInput holds the writable fields of a catalog item.
type SubmitFoodInput struct {
	FoodName string `json:"food_name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	URL      string `json:"url"`
	TitleID  string `json:"titleId"`
	Category string `json:"category"`
}
