package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dindigul/internal/domain/entity"
	"dindigul/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedCatalog is a tiny fixed catalog for handler tests.
type fixedCatalog struct {
	items      []entity.MenuItem
	categories []entity.Category
}

func (c *fixedCatalog) Items() []entity.MenuItem { return c.items }

func (c *fixedCatalog) ItemByID(id string) (entity.MenuItem, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}

	return entity.MenuItem{}, repository.ErrMenuItemNotFound
}

func (c *fixedCatalog) Categories() []entity.Category { return c.categories }

// testMenuItems is the fixed menu the handler tests share.
func testMenuItems() []entity.MenuItem {
	return []entity.MenuItem{
		{ID: "mutton-biryani", Name: "Dindigul Mutton Biryani", Description: "Seeraga samba rice", Price: 280, Category: "biryani"},
		{ID: "chicken-biryani", Name: "Chicken Biryani", Description: "Seeraga samba rice", Price: 220, Category: "biryani"},
		{ID: "jigarthanda", Name: "Jigarthanda", Description: "Chilled almond gum drink", Price: 80, Category: "drinks"},
	}
}

func newMenuFixture() *MenuHandler {
	return NewMenuHandler(&fixedCatalog{
		items: testMenuItems(),
		categories: []entity.Category{
			{ID: "biryani", Name: "Biryani"},
			{ID: "drinks", Name: "Drinks"},
		},
	})
}

// menuResponse is the envelope shape the handler writes, with the data
// decoded as menu items.
type menuResponse struct {
	Success bool              `json:"success"`
	Data    []entity.MenuItem `json:"data"`
}

func getItems(t *testing.T, h *MenuHandler, target string) menuResponse {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListItems(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body menuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestMenuHandler_ListItems_Unfiltered(t *testing.T) {
	t.Parallel()

	body := getItems(t, newMenuFixture(), "/api/menu")

	assert.True(t, body.Success)
	assert.Len(t, body.Data, 3)
}

func TestMenuHandler_ListItems_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{
			name:    "category filter",
			target:  "/api/menu?category=biryani",
			wantIDs: []string{"mutton-biryani", "chicken-biryani"},
		},
		{
			name:    "the all category is a no-op",
			target:  "/api/menu?category=all",
			wantIDs: []string{"mutton-biryani", "chicken-biryani", "jigarthanda"},
		},
		{
			name:    "search matches names case-insensitively",
			target:  "/api/menu?q=JIGAR",
			wantIDs: []string{"jigarthanda"},
		},
		{
			name:    "search matches descriptions",
			target:  "/api/menu?q=almond",
			wantIDs: []string{"jigarthanda"},
		},
		{
			name:    "category and search combine",
			target:  "/api/menu?category=biryani&q=mutton",
			wantIDs: []string{"mutton-biryani"},
		},
		{
			name:    "no match yields an empty list",
			target:  "/api/menu?q=pizza",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := getItems(t, newMenuFixture(), tt.target)

			gotIDs := make([]string, 0, len(body.Data))
			for _, item := range body.Data {
				gotIDs = append(gotIDs, item.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestMenuHandler_ListCategories(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/menu/categories", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, newMenuFixture().ListCategories(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []entity.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "biryani", body.Data[0].ID)
}
