package catalog

func MapFoodRecordToItem(r *FoodRecord) *FoodItem {
	if r == nil {
		return nil
	}

	return &FoodItem{
		FoodID:   r.FoodID,
		FoodName: r.Title,
		Quantity: r.Quantity,
		Price:    r.Rate.Float64(),
		URL:      r.URL,
		TitleID:  r.TitleID,
	}
}
