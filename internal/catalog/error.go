package catalog

const (
	msgAccessStore   = "Error accessing DynamoDB"
	msgFetchItem     = "Error fetching food item"
	msgSubmitItem    = "Error submitting food item"
	msgItemNotFound  = "Food item not found"
	msgFoodNameEmpty = "food name is required"
)
