package models

// CartItem is a product snapshot plus the selected variant and quantity.
// Items are copied at order time and do not track later product edits.
// Identity within a cart is the triple (product id, size, color).
type CartItem struct {
	Product       `bson:",inline"`
	Quantity      int    `bson:"quantity" json:"quantity"`
	SelectedSize  string `bson:"selectedSize" json:"selectedSize"`
	SelectedColor string `bson:"selectedColor" json:"selectedColor"`
}
