package domain

// CartLine associates a catalog product with a quantity. At most one line
// exists per product id; repeated adds merge into the existing line.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total is the line price, price * quantity.
func (l CartLine) Total() int64 {
	return l.Product.Price * int64(l.Quantity)
}
