// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// MenuItem is a single dish on the menu. The catalog that supplies menu
// items is static and read-only; the ordering core never mutates it.
type MenuItem struct {
	ID           string `json:"id"`           // Unique identifier of the dish within the catalog.
	Name         string `json:"name"`         // Display name of the dish.
	Description  string `json:"description"`  // Short marketing description.
	Price        int    `json:"price"`        // Price in whole rupees; always positive.
	Image        string `json:"image"`        // Reference to the dish image asset.
	Category     string `json:"category"`     // Identifier of the Category this dish belongs to.
	IsVeg        bool   `json:"isVeg"`        // Dietary flag: vegetarian when true.
	IsSpicy      bool   `json:"isSpicy,omitempty"`      // Optional flag for spicy dishes.
	IsBestseller bool   `json:"isBestseller,omitempty"` // Optional flag for bestselling dishes.
}

// Category groups menu items for browsing and filtering.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
