// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dindigul/internal/domain/entity"
)

// CartView is the read model returned after every cart operation so the
// caller always sees totals consistent with its last mutation.
type CartView struct {
	Lines  []entity.CartLine
	Totals entity.CartTotals
}

// CartUsecase defines the interface for the cart store. The cart is owned
// by a single store instance constructed at process start; mutations are
// atomic from the caller's perspective and a read immediately following a
// write observes that write.
type CartUsecase interface {
	// AddItem puts one unit of the menu item in the cart. If a line for
	// the item already exists its quantity is incremented; otherwise a
	// new line is appended. It always succeeds.
	AddItem(ctx context.Context, itemID string) (*CartView, error)

	// UpdateQuantity sets the quantity of the line for itemID. A quantity
	// of zero or less removes the line. An absent line is a silent no-op.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*CartView, error)

	// RemoveItem removes the line for itemID unconditionally; absent
	// lines are a silent no-op.
	RemoveItem(ctx context.Context, itemID string) (*CartView, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// View returns the lines in first-added-first-shown order together
	// with totals recomputed from the lines.
	View(ctx context.Context) *CartView
}
