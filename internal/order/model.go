package order

import "fooodimp-be/internal/money"

// Order is immutable once written.
type Order struct {
	OrderNumber  string       `dynamodbav:"orderNumber" json:"orderNumber"`
	CustomerName string       `dynamodbav:"customerName" json:"customerName"`
	CartItems    []CartItem   `dynamodbav:"cartItems" json:"cartItems"`
	TotalAmount  money.Amount `dynamodbav:"totalAmount" json:"totalAmount"`
}

type CartItem struct {
	FoodID   int          `dynamodbav:"foodID" json:"foodID"`
	FoodName string       `dynamodbav:"food_name" json:"food_name"`
	Quantity int          `dynamodbav:"quantity" json:"quantity"`
	Price    money.Amount `dynamodbav:"price" json:"price"`
}

// CartItemInput carries the price as text so rounding happens on exact decimals.
type CartItemInput struct {
	FoodID   int    `json:"foodID"`
	FoodName string `json:"food_name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type SubmitOrderInput struct {
	CustomerName string          `json:"customerName"`
	CartItems    []CartItemInput `json:"cartItems"`
	TotalAmount  string          `json:"totalAmount"`
}

type Receipt struct {
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber"`
}
