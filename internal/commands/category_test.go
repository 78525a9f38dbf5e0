package commands

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/srecha/invoice-core/internal/models"
)

func TestCategoriesSeededAndSorted(t *testing.T) {
	d, _ := setupDispatcher(t)

	var list []models.Category
	call(t, d, "get_categories", `{}`, &list)
	if len(list) != 5 {
		t.Fatalf("expected 5 seeded categories, got %d", len(list))
	}
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("categories not sorted by name: %v", names)
	}
}

func TestSubcategoriesByCategory(t *testing.T) {
	d, _ := setupDispatcher(t)

	var cat models.Category
	call(t, d, "create_category", `{"category":{"name":"Teaware"}}`, &cat)

	args, _ := json.Marshal(map[string]any{"subcategory": map[string]any{"name": "Gaiwan", "categoryId": cat.ID}})
	call(t, d, "create_subcategory", string(args), nil)
	args, _ = json.Marshal(map[string]any{"subcategory": map[string]any{"name": "Chahai", "categoryId": cat.ID}})
	call(t, d, "create_subcategory", string(args), nil)

	var subs []models.Subcategory
	byCat, _ := json.Marshal(map[string]any{"categoryId": cat.ID})
	call(t, d, "get_subcategories_by_category", string(byCat), &subs)
	if len(subs) != 2 {
		t.Fatalf("expected 2 subcategories, got %d", len(subs))
	}
	// name ASC
	if subs[0].Name != "Chahai" || subs[1].Name != "Gaiwan" {
		t.Fatalf("wrong order: %#v", subs)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	d, _ := setupDispatcher(t)

	var cat models.Category
	call(t, d, "create_category", `{"category":{"name":"Doomed"}}`, &cat)
	args, _ := json.Marshal(map[string]any{"subcategory": map[string]any{"name": "Child", "categoryId": cat.ID}})
	call(t, d, "create_subcategory", string(args), nil)

	del, _ := json.Marshal(map[string]any{"id": cat.ID})
	call(t, d, "delete_category", string(del), nil)

	var subs []models.Subcategory
	call(t, d, "get_subcategories", `{}`, &subs)
	for _, s := range subs {
		if s.CategoryID == cat.ID {
			t.Fatalf("orphaned subcategory survived cascade: %#v", s)
		}
	}
	var cats []models.Category
	call(t, d, "get_categories", `{}`, &cats)
	for _, c := range cats {
		if c.ID == cat.ID {
			t.Fatalf("category survived delete")
		}
	}
}
