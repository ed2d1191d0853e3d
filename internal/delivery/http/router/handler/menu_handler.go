// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strings"

	"dindigul/internal/delivery/http/response"
	"dindigul/internal/domain/entity"
	"dindigul/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// MenuHandler serves the static menu catalog.
type MenuHandler struct {
	catalog repository.CatalogRepository
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(catalog repository.CatalogRepository) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// ListItems returns the menu, optionally filtered by category and a
// case-insensitive name/description search, the way the menu page
// filters client-side.
func (h *MenuHandler) ListItems(c echo.Context) error {
	items := h.catalog.Items()

	if category := c.QueryParam("category"); category != "" && category != "all" {
		items = filterItems(items, func(item entity.MenuItem) bool {
			return item.Category == category
		})
	}

	if q := strings.ToLower(strings.TrimSpace(c.QueryParam("q"))); q != "" {
		items = filterItems(items, func(item entity.MenuItem) bool {
			return strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Description), q)
		})
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListCategories returns the menu categories in display order.
func (h *MenuHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Categories(), "")
}

func filterItems(items []entity.MenuItem, keep func(entity.MenuItem) bool) []entity.MenuItem {
	filtered := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}
