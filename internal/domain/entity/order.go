// Package entity contains the core business objects of the project.
package entity

import "time"

// Order is the confirmation produced when checkout succeeds. There is no
// backend to submit it to, so it lives only as the value returned to the
// caller; nothing is persisted.
type Order struct {
	Lines       []CartLine `json:"lines"`
	Subtotal    int        `json:"subtotal"`
	DeliveryFee int        `json:"deliveryFee"`
	GrandTotal  int        `json:"grandTotal"`
	Address     Address    `json:"address"`
	PlacedAt    time.Time  `json:"placedAt"`
}
