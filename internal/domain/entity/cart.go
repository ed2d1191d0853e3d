// Package entity contains the core business objects of the project.
package entity

// CartLine is one (menu item, quantity) pair in the active cart.
// A line only exists while its quantity is at least one; dropping the
// quantity to zero removes the line entirely.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// LineTotal returns the price contribution of this line.
func (l CartLine) LineTotal() int {
	return l.Item.Price * l.Quantity
}

// CartTotals holds the derived values of a cart. They are never stored;
// callers recompute them from the lines on every read.
type CartTotals struct {
	ItemCount int `json:"itemCount"` // Sum of quantities across all lines.
	Subtotal  int `json:"subtotal"`  // Sum of price times quantity across all lines, before delivery fee.
}
