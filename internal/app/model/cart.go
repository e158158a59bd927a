package model

// CartEntry pairs a catalog product with the quantity currently in the cart.
// Quantity never drops below 1; an entry leaves the cart only through an
// explicit remove.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary is the read model handed to the presentation layer: a snapshot
// of the entries plus totals derived from that same snapshot.
type CartSummary struct {
	Items         []CartEntry `json:"items"`
	TotalQuantity int         `json:"total_quantity"`
	TotalCost     int64       `json:"total_cost"` // 원 단위 (whole KRW)
}
