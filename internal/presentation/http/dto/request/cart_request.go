package request

// AddCartItemRequest adds one unit of a catalog item to the cart.
type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}

// UpdateCartItemRequest sets the absolute quantity of a cart line.
// Zero or negative removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// SetDiscountRequest sets the discount percent for the in-progress sale.
type SetDiscountRequest struct {
	Percent float64 `json:"percent" binding:"min=0,max=100"`
}

// SetPaymentMethodRequest selects the payment method for the in-progress
// sale.
type SetPaymentMethodRequest struct {
	Method string `json:"method" binding:"required,oneof=cash card"`
}
