// Package catalog supplies the static menu catalog. The catalog is read
// once at startup, either from a YAML file named in the configuration or
// from the default catalog embedded in the binary, and never changes
// afterwards.
package catalog

import (
	_ "embed"
	"log/slog"
	"os"

	"dindigul/config"
	"dindigul/internal/domain/entity"
	"dindigul/internal/domain/repository"
	"dindigul/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// menuDoc is the YAML shape of a catalog file.
type menuDoc struct {
	Categories []categoryDoc `yaml:"categories"`
	Items      []itemDoc     `yaml:"items"`
}

type categoryDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type itemDoc struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Price        int    `yaml:"price"`
	Image        string `yaml:"image"`
	Category     string `yaml:"category"`
	IsVeg        bool   `yaml:"isVeg"`
	IsSpicy      bool   `yaml:"isSpicy"`
	IsBestseller bool   `yaml:"isBestseller"`
}

// staticCatalog implements repository.CatalogRepository over an immutable
// snapshot, so reads need no locking.
type staticCatalog struct {
	items      []entity.MenuItem
	byID       map[string]entity.MenuItem
	categories []entity.Category
}

// New loads the catalog named by the configuration, falling back to the
// embedded default when no path is configured.
func New(cfg *config.Config, logger *slog.Logger) (repository.CatalogRepository, error) {
	raw := defaultMenu
	source := "embedded"

	if cfg.Catalog != nil && cfg.Catalog.Path != "" {
		fileRaw, err := os.ReadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog file %s", cfg.Catalog.Path)
		}
		raw = fileRaw
		source = cfg.Catalog.Path
	}

	catalog, err := parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse catalog %s", source)
	}

	logger.Info("Menu catalog loaded",
		slog.String("source", source),
		slog.Int("items", len(catalog.items)),
		slog.Int("categories", len(catalog.categories)),
	)

	return catalog, nil
}

func parse(raw []byte) (*staticCatalog, error) {
	var doc menuDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog yaml")
	}

	catalog := &staticCatalog{
		byID: make(map[string]entity.MenuItem, len(doc.Items)),
	}

	for _, c := range doc.Categories {
		catalog.categories = append(catalog.categories, entity.Category{
			ID:          c.ID,
			Name:        c.Name,
			Icon:        c.Icon,
			Description: c.Description,
		})
	}

	for _, d := range doc.Items {
		if d.ID == "" {
			return nil, errors.New("catalog item without an id")
		}
		if _, dup := catalog.byID[d.ID]; dup {
			return nil, errors.Errorf("duplicate catalog item id %q", d.ID)
		}
		if d.Price <= 0 {
			return nil, errors.Errorf("catalog item %q has non-positive price %d", d.ID, d.Price)
		}

		item := entity.MenuItem{
			ID:           d.ID,
			Name:         d.Name,
			Description:  d.Description,
			Price:        d.Price,
			Image:        d.Image,
			Category:     d.Category,
			IsVeg:        d.IsVeg,
			IsSpicy:      d.IsSpicy,
			IsBestseller: d.IsBestseller,
		}
		catalog.items = append(catalog.items, item)
		catalog.byID[d.ID] = item
	}

	return catalog, nil
}

// Items returns every menu item in catalog order.
func (c *staticCatalog) Items() []entity.MenuItem {
	items := make([]entity.MenuItem, len(c.items))
	copy(items, c.items)

	return items
}

// ItemByID retrieves a single menu item.
func (c *staticCatalog) ItemByID(id string) (entity.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return entity.MenuItem{}, repository.ErrMenuItemNotFound
	}

	return item, nil
}

// Categories returns the menu categories in display order.
func (c *staticCatalog) Categories() []entity.Category {
	categories := make([]entity.Category, len(c.categories))
	copy(categories, c.categories)

	return categories
}
