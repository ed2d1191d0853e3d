// Package repository defines the interfaces for the persistence and
// catalog layers. These interfaces act as a contract between the
// domain/application layers and the infrastructure layer.
package repository

import (
	"errors"

	"dindigul/internal/domain/entity"
)

// ErrMenuItemNotFound is returned when a menu item id is not in the catalog.
var ErrMenuItemNotFound = errors.New("menu item not found")

// CatalogRepository supplies the static menu catalog. The catalog is
// loaded once at startup and never mutated by the ordering core, so the
// interface is read-only and context-free.
type CatalogRepository interface {
	// Items returns every menu item in catalog order.
	Items() []entity.MenuItem

	// ItemByID retrieves a single menu item, or ErrMenuItemNotFound.
	ItemByID(id string) (entity.MenuItem, error)

	// Categories returns the menu categories in display order.
	Categories() []entity.Category
}
