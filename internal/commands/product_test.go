package commands

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/srecha/invoice-core/internal/models"
)

func TestProductCreateDefaults(t *testing.T) {
	d, _ := setupDispatcher(t)

	var created models.Product
	call(t, d, "create_product", `{"product":{"code":"GT-001","name":"Зеленый чай"}}`, &created)
	if created.ID == "" {
		t.Fatalf("missing id")
	}
	if created.Price == nil || *created.Price != 0 {
		t.Fatalf("expected default price 0, got %v", created.Price)
	}
	if created.IsActive == nil || *created.IsActive != 1 {
		t.Fatalf("expected default is_active 1, got %v", created.IsActive)
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatalf("missing timestamps: %#v", created)
	}
}

func TestProductSoftDelete(t *testing.T) {
	d, _ := setupDispatcher(t)

	var created models.Product
	call(t, d, "create_product", `{"product":{"code":"BT-001","name":"Черный чай"}}`, &created)

	args, _ := json.Marshal(map[string]any{"id": created.ID})
	call(t, d, "delete_product", string(args), nil)

	var list []models.Product
	call(t, d, "get_products", `{}`, &list)
	if len(list) != 0 {
		t.Fatalf("soft-deleted product still listed: %#v", list)
	}

	// lookup-by-code ignores the active flag; historical documents still
	// resolve the row
	var byCode *models.Product
	call(t, d, "get_product_by_code", `{"code":"BT-001"}`, &byCode)
	if byCode == nil || byCode.ID != created.ID {
		t.Fatalf("soft-deleted product not found by code: %#v", byCode)
	}
	if byCode.IsActive == nil || *byCode.IsActive != 0 {
		t.Fatalf("expected is_active 0, got %v", byCode.IsActive)
	}
}

func TestProductByCodeAbsent(t *testing.T) {
	d, _ := setupDispatcher(t)

	var byCode *models.Product
	call(t, d, "get_product_by_code", `{"code":"NOPE"}`, &byCode)
	if byCode != nil {
		t.Fatalf("expected null for absent code, got %#v", byCode)
	}
}

func TestProductUpdate(t *testing.T) {
	d, _ := setupDispatcher(t)

	var created models.Product
	call(t, d, "create_product", `{"product":{"code":"P-1","name":"Old","price":10}}`, &created)

	args, _ := json.Marshal(map[string]any{
		"id":      created.ID,
		"product": map[string]any{"code": "P-1", "name": "New", "price": 25.5},
	})
	call(t, d, "update_product", string(args), nil)

	var got *models.Product
	call(t, d, "get_product_by_code", `{"code":"P-1"}`, &got)
	if got == nil || got.Name != "New" || got.Price == nil || *got.Price != 25.5 {
		t.Fatalf("update not applied: %#v", got)
	}
	if got.CreatedAt != created.CreatedAt {
		t.Fatalf("created_at rewritten on update")
	}
}

func TestProductCodeUnique(t *testing.T) {
	d, _ := setupDispatcher(t)

	call(t, d, "create_product", `{"product":{"code":"DUP","name":"one"}}`, nil)
	_, err := d.Dispatch(context.Background(), "create_product", json.RawMessage(`{"product":{"code":"DUP","name":"two"}}`))
	if err == nil {
		t.Fatalf("expected unique constraint failure for duplicate code")
	}
}
