package order

import (
	"fooodimp-be/internal/apperror"
	"fooodimp-be/internal/money"
)

// mapCartItems validates and rounds every item in order. The first invalid
// item stops the walk.
func mapCartItems(inputs []CartItemInput) ([]CartItem, error) {
	items := make([]CartItem, 0, len(inputs))

	for _, in := range inputs {
		price, err := money.Parse(in.Price)
		if err != nil {
			return nil, apperror.Validation("invalid price for item " + in.FoodName)
		}
		if in.Quantity < 0 {
			return nil, apperror.Validation("invalid quantity for item " + in.FoodName)
		}

		items = append(items, CartItem{
			FoodID:   in.FoodID,
			FoodName: in.FoodName,
			Quantity: in.Quantity,
			Price:    price,
		})
	}

	return items, nil
}
