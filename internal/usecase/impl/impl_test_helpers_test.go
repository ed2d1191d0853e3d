package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"dindigul/internal/domain/entity"
	"dindigul/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCatalog is a tiny fixed catalog for service tests.
type fakeCatalog struct {
	items []entity.MenuItem
}

func newFakeCatalog(items ...entity.MenuItem) *fakeCatalog {
	return &fakeCatalog{items: items}
}

func (c *fakeCatalog) Items() []entity.MenuItem {
	return c.items
}

func (c *fakeCatalog) ItemByID(id string) (entity.MenuItem, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}

	return entity.MenuItem{}, repository.ErrMenuItemNotFound
}

func (c *fakeCatalog) Categories() []entity.Category {
	return nil
}

// notification is one captured Notify call.
type notification struct {
	Title       string
	Description string
}

// recordingNotifier captures Notify calls for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func (n *recordingNotifier) Notify(ctx context.Context, title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{Title: title, Description: description})
}

func (n *recordingNotifier) Calls() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]notification, len(n.calls))
	copy(out, n.calls)

	return out
}

// Fixed menu items shared by the service tests.
var (
	testBiryani = entity.MenuItem{
		ID:       "mutton-biryani",
		Name:     "Dindigul Mutton Biryani",
		Price:    280,
		Category: "biryani",
	}
	testDosa = entity.MenuItem{
		ID:       "ghee-roast",
		Name:     "Ghee Roast Dosa",
		Price:    90,
		Category: "tiffin",
		IsVeg:    true,
	}
	testJigarthanda = entity.MenuItem{
		ID:       "jigarthanda",
		Name:     "Jigarthanda",
		Price:    80,
		Category: "drinks",
		IsVeg:    true,
	}
	testFamilyCombo = entity.MenuItem{
		ID:       "family-combo",
		Name:     "Family Combo",
		Price:    499,
		Category: "biryani",
	}
)

func newTestCart() *cartService {
	catalog := newFakeCatalog(testBiryani, testDosa, testJigarthanda, testFamilyCombo)

	return NewCartService(catalog, newDiscardLogger()).(*cartService)
}
