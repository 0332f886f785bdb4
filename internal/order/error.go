package order

const (
	MsgOrderPlaced = "Order placed successfully!"

	msgInvalidTotal  = "invalid total amount"
	msgPlaceOrder    = "Error placing order"
	msgFetchOrder    = "Error fetching order"
	msgOrderNotFound = "Order not found"
)
