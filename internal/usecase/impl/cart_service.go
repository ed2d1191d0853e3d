// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"dindigul/internal/domain/entity"
	"dindigul/internal/domain/repository"
	"dindigul/internal/errors"
	"dindigul/internal/usecase"
)

// cartService implements the CartUsecase interface. It is the single
// owner of the cart lines; all mutations take the mutex so concurrent
// HTTP requests are serialized into the one-mutation-at-a-time model the
// storefront assumes.
type cartService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger

	mu    sync.Mutex
	lines []entity.CartLine
}

// NewCartService is the constructor for cartService.
func NewCartService(catalog repository.CatalogRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		catalog: catalog,
		logger:  logger,
	}
}

// AddItem puts one unit of the menu item in the cart.
func (srv *cartService) AddItem(ctx context.Context, itemID string) (*usecase.CartView, error) {
	item, err := srv.catalog.ItemByID(itemID)
	if err != nil {
		srv.logger.Warn("Rejected cart add for unknown item", slog.String("itemID", itemID))

		return nil, errors.Wrap(err, "failed to resolve menu item")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if i := srv.indexOf(itemID); i >= 0 {
		srv.lines[i].Quantity++
	} else {
		srv.lines = append(srv.lines, entity.CartLine{Item: item, Quantity: 1})
	}

	srv.logger.Debug("Added item to cart", slog.String("itemID", itemID))

	return srv.view(), nil
}

// UpdateQuantity sets the quantity of the line for itemID. Zero or less
// removes the line; an absent line is a no-op, not an error.
func (srv *cartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	i := srv.indexOf(itemID)
	if i < 0 {
		return srv.view(), nil
	}

	if quantity <= 0 {
		srv.lines = slices.Delete(srv.lines, i, i+1)
		srv.logger.Debug("Removed cart line via zero quantity", slog.String("itemID", itemID))

		return srv.view(), nil
	}

	srv.lines[i].Quantity = quantity

	return srv.view(), nil
}

// RemoveItem removes the line for itemID unconditionally.
func (srv *cartService) RemoveItem(ctx context.Context, itemID string) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if i := srv.indexOf(itemID); i >= 0 {
		srv.lines = slices.Delete(srv.lines, i, i+1)
		srv.logger.Debug("Removed item from cart", slog.String("itemID", itemID))
	}

	return srv.view(), nil
}

// Clear empties the cart. Used after a successful order placement.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.lines = nil
	srv.logger.Debug("Cleared cart")

	return nil
}

// View returns the lines in insertion order with freshly computed totals.
func (srv *cartService) View(ctx context.Context) *usecase.CartView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.view()
}

// indexOf returns the position of the line for itemID, or -1.
// Callers must hold the mutex.
func (srv *cartService) indexOf(itemID string) int {
	return slices.IndexFunc(srv.lines, func(l entity.CartLine) bool {
		return l.Item.ID == itemID
	})
}

// view snapshots the lines and recomputes totals. Totals are never cached,
// so a read immediately after a mutation always observes it.
// Callers must hold the mutex.
func (srv *cartService) view() *usecase.CartView {
	totals := entity.CartTotals{}
	for _, line := range srv.lines {
		totals.ItemCount += line.Quantity
		totals.Subtotal += line.LineTotal()
	}

	return &usecase.CartView{
		Lines:  slices.Clone(srv.lines),
		Totals: totals,
	}
}
